package export

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPrintTimeout bounds a single print job.
const DefaultPrintTimeout = 30 * time.Second

// PrintPDF renders an HTML document in a headless browser and returns the
// printed PDF bytes. Requires Chrome/Chromium to be installed on the
// system; callers should degrade to the HTML export when it is not.
func PrintPDF(ctx context.Context, html string, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html;charset=utf-8,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return pdf, nil
}

// PrintableDocument wraps a rendered preview fragment in a full page with
// print margins so it can be handed to PrintPDF.
func PrintableDocument(title, fragment string) string {
	return fmt.Sprintf(printShell, htmlTitle(title), fragment)
}

func htmlTitle(title string) string {
	if title == "" {
		title = "Resume"
	}
	var b []byte
	for _, r := range title {
		switch r {
		case '&':
			b = append(b, "&amp;"...)
		case '<':
			b = append(b, "&lt;"...)
		case '>':
			b = append(b, "&gt;"...)
		default:
			b = append(b, string(r)...)
		}
	}
	return string(b)
}

const printShell = `<!doctype html>
<html>
<head>
<meta charset="utf-8"/>
<title>%s</title>
<style>
@page{size:letter;margin:16mm}
body{font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Inter,Arial;color:#0f172a;margin:0}
h1,h2,h3{margin:0 0 6px}
ul{margin:4px 0;padding-left:20px}
</style>
</head>
<body>
%s
</body>
</html>`
