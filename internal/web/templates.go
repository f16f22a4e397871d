package web

import (
    "bytes"
    "html/template"

    "github.com/jaminalder/codex-noughts-crosses/internal/app"
    "github.com/jaminalder/codex-noughts-crosses/internal/domain"
)

type templates struct {
    game  *template.Template
    board *template.Template
    index *template.Template
}

func funcs() template.FuncMap {
    return template.FuncMap{
        "cellSymbol": func(c domain.Cell) string { return c.String() },
        "isEmpty":    func(c domain.Cell) bool { return c == domain.Empty },
    }
}

func loadTemplates() *templates {
    base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Noughts and Crosses</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head><body>{{template "content" .}}</body></html>`))
    // Define the board template within the same set so game can include it
    template.Must(base.New("board").Parse(boardTemplate))
    index := template.Must(template.Must(base.Clone()).New("content").Parse(indexTemplate))
    game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<h1>Noughts and Crosses</h1>
<p class="players">{{(index .View.Players 0).Name}} (X) vs {{(index .View.Players 1).Name}} (O)</p>
{{template "board" .}}
<form method="post" action="/match/{{.View.ID}}/delete">
  <button type="submit">New match</button>
</form>`))
    // Standalone board template used for fragment rendering
    board := template.Must(template.New("board_only").Funcs(funcs()).Parse(boardTemplate))
    return &templates{game: game, board: board, index: index}
}

// renderTemplate executes t, or the named template of its set when name is set.
func renderTemplate(t *template.Template, name string, data any) ([]byte, error) {
    var buf bytes.Buffer
    var err error
    if name == "" {
        err = t.Execute(&buf, data)
    } else {
        err = t.ExecuteTemplate(&buf, name, data)
    }
    if err != nil {
        return nil, err
    }
    return buf.Bytes(), nil
}

// boardData feeds both the full page and the board fragment.
type boardData struct {
    View  *app.MatchView
    Error string
}

const indexTemplate = `<h1>Noughts and Crosses</h1>
<form action="/match" method="post" id="setup">
  <label>Player 1 (X) <input name="player1" maxlength="32"></label>
  <label>Player 2 (O) <input name="player2" maxlength="32"></label>
  <label>Mode
    <select name="mode">
      <option value="human">Human vs human</option>
      <option value="computer">Human vs computer</option>
    </select>
  </label>
  <button type="submit">Start</button>
</form>`

const boardTemplate = `
<div id="board">
  <p id="status">{{.View.StatusText}}</p>
  {{with .View.Winner}}<p class="winner">Winner: {{.}}</p>{{end}}
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  {{/* 3x3 grid */}}
  {{range $x, $row := .View.Board}}
  <div class="row">
    {{range $y, $cell := $row}}
      <form hx-post="/match/{{$.View.ID}}/play" hx-target="#board" hx-swap="outerHTML" method="post" action="/match/{{$.View.ID}}/play">
        <input type="hidden" name="x" value="{{$x}}">
        <input type="hidden" name="y" value="{{$y}}">
        <button type="submit" class="square"{{if or $.View.Over (not (isEmpty $cell))}} disabled{{end}}>{{cellSymbol $cell}}</button>
      </form>
    {{end}}
  </div>
  {{end}}
  <form hx-post="/match/{{.View.ID}}/restart" hx-target="#board" hx-swap="outerHTML" method="post" action="/match/{{.View.ID}}/restart">
    <button type="submit">Restart</button>
  </form>
</div>
`
