// Package render turns user rows into the HTML page served by the backend.
package render

import (
	"html/template"
	"io"

	"github.com/you/hello-users/internal/domain"
)

const stylesheetURL = "https://stackpath.bootstrapcdn.com/bootstrap/4.5.2/css/bootstrap.min.css"

// One <tr> per user, in input order. Values are HTML-escaped.
var usersPage = template.Must(template.New("users").Parse(
	`<html>` +
		`<head><link rel="stylesheet" href="{{.Stylesheet}}"></head>` +
		`<body>` +
		`<div class="container">` +
		`<h1 class="mt-5">Response from the SQL</h1>` +
		`<table class="table table-striped mt-3">` +
		`<thead><tr><th>ID</th><th>Name</th></tr></thead>` +
		`<tbody>` +
		`{{range .Users}}<tr><td>{{.ID}}</td><td>{{.Name}}</td></tr>{{end}}` +
		`</tbody>` +
		`</table>` +
		`</div>` +
		`</body>` +
		`</html>`,
))

type usersPageData struct {
	Stylesheet string
	Users      []domain.User
}

// UsersPage writes the users table page to w.
func UsersPage(w io.Writer, users []domain.User) error {
	return usersPage.Execute(w, usersPageData{Stylesheet: stylesheetURL, Users: users})
}
