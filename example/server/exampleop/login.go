package exampleop

import (
	"fmt"
	"html/template"
	"net/http"
)

var loginTmpl, _ = template.New("login").Parse(`
	<!DOCTYPE html>
	<html>
		<head>
			<meta charset="UTF-8">
			<title>Login</title>
		</head>
		<body style="display: flex; align-items: center; justify-content: center; height: 100vh;">
			<form method="POST" action="/login" style="height: 200px; width: 200px;">

				<div>
					<label for="username">Username:</label>
					<input id="username" name="username" style="width: 100%">
				</div>

				<div>
					<label for="password">Password:</label>
					<input id="password" name="password" type="password" style="width: 100%">
				</div>

				<p style="color:red; min-height: 1rem;">{{.Error}}</p>

				<button type="submit">Login</button>
			</form>
		</body>
	</html>`)

func (s *server) loginHandler(w http.ResponseWriter, r *http.Request) {
	renderLogin(w, nil)
}

func (s *server) checkLoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("cannot parse form: %s", err), http.StatusInternalServerError)
		return
	}
	user := s.storage.UserStore().GetUserByUsername(r.FormValue("username"))
	// plain text passwords are for the example only, hash them in real stores
	if user == nil || user.Password != r.FormValue("password") {
		renderLogin(w, fmt.Errorf("username or password wrong"))
		return
	}
	if err := s.sessions.signIn(w, user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/consent", http.StatusFound)
}

func renderLogin(w http.ResponseWriter, err error) {
	data := &struct {
		Error string
	}{
		Error: errMsg(err),
	}
	if err := loginTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func errMsg(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
