package server

import (
	"html/template"

	"github.com/spektr-org/plotfit/engine"
)

type pageData struct {
	Request  engine.PlotRequest
	Kinds    []engine.ChartKind
	ChartURI template.URL
	Equation string
	Error    string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>plotfit</title>
<style>
body { margin: 0; font-family: sans-serif; display: flex; min-height: 100vh; background: #f5f5f5; }
aside { width: 18rem; padding: 1.5rem; background: #ffe3ec; }
aside label { display: block; margin-top: 1rem; font-weight: bold; }
aside input, aside textarea, aside select { width: 100%; box-sizing: border-box; }
aside button { margin-top: 1.5rem; background: #ff0080; color: #fff; border: 0; padding: .5rem 1.5rem; border-radius: .3rem; }
main { flex: 1; padding: 1.5rem; }
main img { max-width: 100%; }
.error { color: #b00020; background: #fde7e9; padding: .75rem; border-radius: .3rem; }
</style>
</head>
<body>
<aside>
<form method="get" action="/">
<label for="title">Graph Title:</label>
<input id="title" name="title" value="{{.Request.Title}}">
<label for="x">X values (Current A)</label>
<textarea id="x" name="x" rows="3" placeholder="1, 2, 3, 4">{{.Request.X}}</textarea>
<label for="y">Y values (Raman shift cm⁻¹)</label>
<textarea id="y" name="y" rows="3" placeholder="2, 4, 6, 8">{{.Request.Y}}</textarea>
<label for="kind">Chart type</label>
<select id="kind" name="kind">
{{- range .Kinds}}
<option{{if eq (print .) $.Request.Kind}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
<button type="submit">Plot</button>
</form>
</aside>
<main>
{{- if .Error}}
<div class="error">{{.Error}}</div>
{{- end}}
{{- if .ChartURI}}
<img alt="{{.Request.Title}}" src="{{.ChartURI}}">
<details>
<summary>Show regression info</summary>
<p><strong>Equation:</strong> {{.Equation}}</p>
</details>
{{- end}}
</main>
</body>
</html>
`))
