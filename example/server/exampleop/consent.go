package exampleop

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/authhive/ciba/pkg/ciba"
)

var consentTmpl, _ = template.New("consent").Parse(`
	<!DOCTYPE html>
	<html>
		<head>
			<meta charset="UTF-8">
			<title>Pending login requests</title>
		</head>
		<body style="display: flex; align-items: center; justify-content: center; height: 100vh;">
			<div>
				<h1>Pending login requests</h1>
				<p style="color:red; min-height: 1rem;">{{.Error}}</p>
				{{if not .Requests}}<p>Nothing to approve right now.</p>{{end}}
				{{range .Requests}}
				<form method="POST" action="/consent" style="border: 1px solid; padding: 1rem; margin-bottom: 1rem;">
					<input type="hidden" name="id" value="{{.ID}}">
					<p><b>{{.Client.ClientName}}</b> wants to sign you in.</p>
					{{if .BindingMessage}}<p>Code: <b>{{.BindingMessage}}</b></p>{{end}}
					{{range .ValidatedResources.Scopes}}
					<div>
						<input type="checkbox" name="scopes" value="{{.}}" checked>
						<label>{{.}}</label>
					</div>
					{{end}}
					<button type="submit" name="action" value="approve">Approve</button>
					<button type="submit" name="action" value="deny">Deny</button>
				</form>
				{{end}}
			</div>
		</body>
	</html>`)

type consentForm struct {
	ID     string   `schema:"id"`
	Scopes []string `schema:"scopes"`
	Action string   `schema:"action"`
}

func (s *server) consentHandler(w http.ResponseWriter, r *http.Request) {
	s.renderConsent(w, r, nil)
}

func (s *server) checkConsentHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("cannot parse form: %s", err), http.StatusBadRequest)
		return
	}
	form := new(consentForm)
	if err := s.decoder.Decode(form, r.PostForm); err != nil {
		http.Error(w, fmt.Sprintf("cannot decode form: %s", err), http.StatusBadRequest)
		return
	}

	err := s.interaction.CompleteLoginRequest(r.Context(), &ciba.CompleteBackchannelLoginRequest{
		ID:              form.ID,
		ConsentedScopes: form.Scopes,
		Denied:          form.Action == "deny",
		Description:     r.UserAgent(),
	})
	if err != nil {
		var cibaErr *ciba.Error
		if errors.As(err, &cibaErr) {
			s.renderConsent(w, r, cibaErr)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/consent", http.StatusFound)
}

func (s *server) renderConsent(w http.ResponseWriter, r *http.Request, err error) {
	requests, listErr := s.interaction.PendingLoginRequestsForCurrentUser(r.Context())
	if listErr != nil {
		http.Error(w, listErr.Error(), http.StatusInternalServerError)
		return
	}
	data := &struct {
		Requests any
		Error    string
	}{
		Requests: requests,
		Error:    errMsg(err),
	}
	if err := consentTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
