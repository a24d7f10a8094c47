package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5ec8f0")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// printNames prints one preview name per line, or a hint when empty.
func printNames(w io.Writer, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(w, hintStyle.Render("No athletes found."))
		return
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func printLoggedIn(w io.Writer, tokenPath string) {
	fmt.Fprintf(w, "\n%s\n\n%s\n%s\n\n",
		titleStyle.Render("ATHLETEN"),
		"Authenticated.",
		hintStyle.Render("Token saved to "+tokenPath+". Run: athleten"))
}

const callbackHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>athleten</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{
  background:#0b1622;color:#e4e4ec;
  font-family:'SF Mono','Consolas',monospace;
  height:100vh;display:flex;align-items:center;justify-content:center;
}
.card{text-align:center}
.logo{font-size:28px;font-weight:700;letter-spacing:10px;margin-bottom:20px;color:#5ec8f0}
.msg{font-size:14px;color:#4ade80;font-weight:600;margin-bottom:8px}
.sub{font-size:12px;color:#505868}
</style>
</head>
<body>
<div class="card">
  <div class="logo">ATHLETEN</div>
  <div class="msg">authenticated</div>
  <div class="sub">return to your terminal</div>
</div>
</body>
</html>`
