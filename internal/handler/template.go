package handler

import "html/template"

// 首页与 404 页面模板（内联，风格沿用 bris.kr 原版深色样式）

const homeTemplate = `{{define "home.tmpl"}}<!DOCTYPE html>
<html>
<head>
    <title>bris.kr</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, system-ui, sans-serif;
            background: #0a0a0a; color: #fff;
            min-height: 100vh; padding: 2rem;
        }
        .container { max-width: 600px; margin: 0 auto; }
        h1 { font-size: 3rem; margin-bottom: 2rem; }
        h1 span { color: #666; }
        form { display: flex; flex-direction: column; gap: 1rem; }
        input, button { padding: 1rem; font-size: 1rem; border: none; border-radius: 8px; }
        input { background: #1a1a1a; color: #fff; }
        input::placeholder { color: #666; }
        button { background: #fff; color: #000; cursor: pointer; font-weight: bold; }
        button:hover { opacity: 0.9; }
        .result { margin-top: 2rem; padding: 1.5rem; background: #1a1a1a; border-radius: 8px; display: none; }
        .result a { color: #4ade80; word-break: break-all; font-size: 1.25rem; }
        .stats { margin-top: 3rem; }
        .stats h2 { margin-bottom: 1rem; font-size: 1.25rem; color: #888; }
        .stats table { width: 100%; border-collapse: collapse; }
        .stats th, .stats td { padding: 0.75rem; text-align: left; border-bottom: 1px solid #333; }
        .stats td { font-family: monospace; font-size: 0.875rem; }
        .stats a { color: #4ade80; }
        .clicks { color: #4ade80; }
        .error { color: #f87171; }
        .info { color: #666; font-size: 0.875rem; margin-top: 2rem; }
    </style>
</head>
<body>
    <div class="container">
        <h1>bris<span>.kr</span></h1>
{{if .Admin}}
        <form id="shorten-form">
            <input type="url" name="url" placeholder="Paste long URL here..." required>
            <input type="text" name="code" placeholder="Custom code (optional)" maxlength="20">
            <button type="submit">Shorten</button>
        </form>

        <div class="result" id="result"></div>

        <div class="stats">
            <h2>Recent URLs ({{.TotalLinks}} total, {{.TotalClicks}} clicks)</h2>
            <table>
                <tr><th>Code</th><th>Destination</th><th>Clicks</th></tr>
                {{range .Recent}}
                <tr>
                    <td><a href="/{{.ShortCode}}">{{.ShortCode}}</a></td>
                    <td>{{.LongURL}}</td>
                    <td class="clicks">{{.ClickCount}}</td>
                </tr>
                {{end}}
            </table>
        </div>

        <script>
        document.getElementById('shorten-form').addEventListener('submit', async function (e) {
            e.preventDefault();
            const box = document.getElementById('result');
            const resp = await fetch('/api/shorten', {
                method: 'POST',
                headers: {'Content-Type': 'application/json', 'X-Admin-Key': {{.Key}}},
                body: JSON.stringify({
                    url: this.elements['url'].value,
                    code: this.elements['code'].value
                })
            });
            const body = await resp.json();
            box.style.display = 'block';
            if (body.success) {
                box.innerHTML = '<p>Short URL:</p><p><a href="' + body.data.shortUrl + '">' + body.data.shortUrl + '</a></p>';
            } else {
                box.innerHTML = '<p class="error">' + body.message + '</p>';
            }
        });
        </script>
{{end}}
        <p class="info">Free URL shortener. No tracking, no ads.</p>
    </div>
</body>
</html>{{end}}`

const notFoundTemplate = `{{define "notfound.tmpl"}}<!DOCTYPE html>
<html>
<head><title>Not Found</title>
<style>
    body { font-family: sans-serif; background: #0a0a0a; color: #fff;
           display: flex; align-items: center; justify-content: center;
           min-height: 100vh; margin: 0; }
    h1 { font-size: 2rem; }
    a { color: #4ade80; }
</style>
</head>
<body><div><h1>404 - Not Found</h1><p><a href="/">&larr; bris.kr</a></p></div></body>
</html>{{end}}`

// Templates 解析内联模板，main 中挂到 gin 引擎上
func Templates() *template.Template {
	return template.Must(template.New("briskr").Parse(homeTemplate + notFoundTemplate))
}
