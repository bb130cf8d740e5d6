package html

// OutlineTemplate wraps the rendered outline in a standalone page
const OutlineTemplate = `<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Hiragino Sans', Meiryo, Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .container {
            max-width: 960px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        header h1 {
            font-size: 2em;
        }

        header p {
            opacity: 0.9;
        }

        .outline {
            background: white;
            padding: 20px 30px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .outline h2, .outline h3, .outline h4, .outline h5, .outline h6 {
            margin: 16px 0 6px;
        }

        .outline h2 {
            font-size: 1.3em;
        }

        .outline h3 {
            font-size: 1.15em;
        }

        .outline h4, .outline h5, .outline h6 {
            font-size: 1em;
        }

        .outline ul {
            margin-left: 24px;
        }

        .empty {
            color: #95a5a6;
            font-style: italic;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{.Title}}</h1>
            <p>{{.Source}}</p>
        </header>
        <section class="outline">
            {{if .Empty}}<p class="empty">No table content.</p>{{else}}{{.Body}}{{end}}
        </section>
    </div>
</body>
</html>
`
