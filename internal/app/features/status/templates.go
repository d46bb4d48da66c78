package status

import "html/template"

var homeTmpl = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Inkpost</title>
  <style>
    body { font-family: Arial, sans-serif; color: #333; max-width: 640px; margin: 48px auto; }
    .ok { color: #2e7d32; }
    .down { color: #c62828; }
    table { border-collapse: collapse; }
    td { padding: 6px 16px 6px 0; }
  </style>
</head>
<body>
  <h1>Inkpost API</h1>
  <p>Server is running.</p>
  <table>
    <tr><td>Document store</td><td>{{if .DBConnected}}<span class="ok">connected</span>{{else}}<span class="down">disconnected</span>{{end}}</td></tr>
    <tr><td>Mail relay</td><td>{{if .MailConnected}}<span class="ok">connected</span>{{else}}<span class="down">disconnected</span>{{end}}</td></tr>
    <tr><td>Port</td><td>{{.Port}}</td></tr>
    <tr><td>Uptime</td><td>{{.Uptime}}</td></tr>
    <tr><td>Go</td><td>{{.GoVersion}}</td></tr>
  </table>
</body>
</html>`))

var notFoundTmpl = template.Must(template.New("notfound").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Not Found</title>
  <style>
    body { font-family: Arial, sans-serif; color: #333; max-width: 640px; margin: 48px auto; }
  </style>
</head>
<body>
  <h1>404 &mdash; Not Found</h1>
  <p>No route matches <code>{{.Path}}</code>.</p>
  <p><a href="/">Back to the status page</a></p>
</body>
</html>`))
