package rest

import (
	"bytes"
	"html/template"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type templates struct {
	index *template.Template
	game  *template.Template
}

type gamePage struct {
	Game        entity.GameView
	TurnMessage string
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"marker": func(cell string) string {
			switch cell {
			case "black":
				return "○"
			case "white":
				return "×"
			default:
				return ""
			}
		},
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Funcs(funcs()).Parse(baseTemplate))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(indexTemplate))
	game := template.Must(template.Must(base.Clone()).New("content").Parse(gameTemplate))

	return &templates{index: index, game: game}
}

func render(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func turnMessage(view entity.GameView) string {
	return view.Turn + "'s turn"
}

const baseTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1.0">
<meta name="description" content="A simple five-in-a-row game">
<title>Gomoku</title>
<style>
.row { display: flex; }
.row form { margin: 0; }
.point { width: 2em; height: 2em; padding: 0; }
</style>
</head>
<body>
<h1>Gomoku</h1>
{{template "content" .}}
</body>
</html>`

const indexTemplate = `<form action="/game" method="post"><button type="submit">New game</button></form>`

const gameTemplate = `<p id="turn">{{.TurnMessage}}</p>
<p id="status">{{.Game.Status}}</p>
<div id="board">
{{- range $y, $row := .Game.Board}}
<div class="row">
{{- range $x, $cell := $row}}
<form action="/game/{{$.Game.ID}}/turn" method="post">
<input type="hidden" name="x" value="{{$x}}">
<input type="hidden" name="y" value="{{$y}}">
<button type="submit" class="point" id="point-{{$x}}-{{$y}}"{{if $.Game.Finished}} disabled{{end}}>{{marker $cell}}</button>
</form>
{{- end}}
</div>
{{- end}}
</div>
<form action="/game" method="post"><button type="submit">New game</button></form>`
