package web

import (
	"html/template"

	"github.com/esimdash/esimdash-cli/internal/view"
)

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"loadingMessage": func() string { return view.LoadingMessage },
	"emptyMessage":   func() string { return view.EmptyMessage },
}).Parse(layoutTemplate + loginTemplate + dashboardTemplate + esimsTemplate))

const layoutTemplate = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>{{.}}</title>
	<style>
		body { font-family: sans-serif; }
		input { display: block; margin: 1rem 0; width: 100%; }
		table { width: 100%; margin-top: 2rem; border-collapse: collapse; }
		.error { color: red; }
	</style>
</head>
<body>{{end}}
{{define "foot"}}</body>
</html>{{end}}
`

const loginTemplate = `
{{define "login.html"}}{{template "head" "ESIM Dashboard Login"}}
<div style="padding: 2rem; max-width: 400px; margin: auto;">
	<h2>ESIM Dashboard Login</h2>
	<form id="login" method="post" action="/login">
		<input name="username" placeholder="Username" value="{{.Username}}" required>
		<input name="password" type="password" placeholder="Password" required>
		<button type="submit">{{.ButtonLabel}}</button>
	</form>
	{{if .Error}}<div class="error" style="color: red; margin-top: 1rem;">{{.Error}}</div>{{end}}
</div>
<script>
	document.getElementById("login").addEventListener("submit", function (e) {
		var b = e.target.querySelector("button");
		b.disabled = true;
		b.textContent = "Logging in...";
	});
</script>
{{template "foot"}}{{end}}
`

const dashboardTemplate = `
{{define "dashboard.html"}}{{template "head" "ESIM Dashboard"}}
<div style="padding: 2rem; max-width: 900px; margin: auto;">
	<div style="display: flex; justify-content: space-between; align-items: center;">
		<h2>ESIM Dashboard</h2>
		<form method="post" action="/logout"><button type="submit">Logout</button></form>
	</div>
	<div id="esims">{{template "esims" .}}</div>
</div>
<script>
	fetch("/dashboard/esims", { credentials: "same-origin" })
		.then(function (res) {
			if (res.redirected) {
				window.location.href = res.url;
				return null;
			}
			return res.text();
		})
		.then(function (html) {
			if (html !== null) {
				document.getElementById("esims").innerHTML = html;
			}
		})
		.catch(function (err) {
			document.getElementById("esims").innerHTML =
				'<div class="error" style="color: red;"></div>';
			document.querySelector("#esims .error").textContent = "Failed to load ESIMs: " + err.message;
		});
</script>
{{template "foot"}}{{end}}
`

const esimsTemplate = `
{{define "esims"}}{{if .Loading}}<div>{{loadingMessage}}</div>
{{else if .Error}}<div class="error" style="color: red;">{{.Error}}</div>
{{else if .Empty}}<div>{{emptyMessage}}</div>
{{else}}<table border="1" cellpadding="8">
	<thead>
		<tr>{{range .Table.Header}}<th>{{.}}</th>{{end}}</tr>
	</thead>
	<tbody>
		{{range .Table.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
		{{end}}
	</tbody>
</table>
{{end}}{{end}}
`
