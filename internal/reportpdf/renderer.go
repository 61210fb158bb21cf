package reportpdf

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ChromiumRenderer turns a contract analysis report into a PDF by converting
// the markdown to HTML and printing it through headless Chromium. The input
// may be either raw markdown or a full response-envelope JSON; in the latter
// case the envelope's report_markdown and metadata drive the page header.
type ChromiumRenderer struct {
	chromePath string
}

func NewChromiumRenderer() *ChromiumRenderer {
	return &ChromiumRenderer{chromePath: detectChromePath()}
}

func (r *ChromiumRenderer) Render(ctx context.Context, report string) ([]byte, error) {
	htmlDoc, err := buildHTML(report)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;padding-right:8px;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

func buildHTML(report string) (string, error) {
	metaHTML := ""
	badgeHTML := ""
	markdown := report

	var envelope map[string]any
	if json.Unmarshal([]byte(report), &envelope) == nil {
		if s, ok := envelope["report_markdown"].(string); ok && strings.TrimSpace(s) != "" {
			markdown = s
		}
		metaHTML = buildMetaHTML(envelope)
		badgeHTML = buildBadgeHTML(envelope)
	}

	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	contentHTML := applyPrintLayoutHooks(content.String())

	return "<!doctype html><html><head><meta charset='utf-8'><title>Contract Analysis Report</title>" +
		"<style>" + reportCSS + "</style></head><body>" +
		"<div class='pdf-wrap'><section class='report-viewer'><div class='report-header'>" +
		"<div class='report-meta'>" + metaHTML + "</div>" +
		"<div class='report-badges'>" + badgeHTML + "</div>" +
		"</div><div class='report-html'>" + contentHTML + "</div></section></div>" +
		"</body></html>", nil
}

// applyPrintLayoutHooks pushes the appendix (raw JSON dumps) onto its own
// page so the readable sections are never interleaved with it.
func applyPrintLayoutHooks(contentHTML string) string {
	reAppendix := regexp.MustCompile(`(?i)<h2([^>]*)>\s*Appendix\s*</h2>`)
	return reAppendix.ReplaceAllString(contentHTML, `<h2$1 data-page-break-before="true">Appendix</h2>`)
}

func buildMetaHTML(env map[string]any) string {
	var out strings.Builder
	if ref := stringValue(env["doc_ref"]); ref != "" {
		out.WriteString("<div><strong>Document:</strong> " + html.EscapeString(ref) + "</div>")
	}
	if ctype := stringValue(env["contract_type"]); ctype != "" {
		out.WriteString("<div><strong>Contract type:</strong> " + html.EscapeString(ctype) + "</div>")
	}
	if completed := lookupString(env, "pipeline_metadata", "completed_at"); completed != "" {
		if ts, err := time.Parse(time.RFC3339Nano, completed); err == nil {
			out.WriteString("<div><strong>Analyzed:</strong> " + html.EscapeString(ts.In(time.Local).Format("January 2, 2006 at 3:04 PM MST")) + "</div>")
		} else {
			out.WriteString("<div><strong>Analyzed:</strong> " + html.EscapeString(completed) + "</div>")
		}
	}
	return out.String()
}

func buildBadgeHTML(env map[string]any) string {
	var out strings.Builder
	if data, ok := env["contract_data"].(map[string]any); ok {
		if score, ok := data["overall_confidence_score"].(float64); ok {
			out.WriteString("<span class='report-badge'>Confidence " + fmt.Sprintf("%.0f", score) + "/100</span>")
		}
		if gaps, ok := data["gap_analysis"].(map[string]any); ok {
			if crit, ok := gaps["critical_gaps"].([]any); ok && len(crit) > 0 {
				out.WriteString("<span class='report-badge report-badge-warn'>" +
					fmt.Sprintf("%d critical gap(s)", len(crit)) + "</span>")
			}
		}
	}
	return out.String()
}

func lookupString(root map[string]any, path ...string) string {
	var cur any = root
	for _, p := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[p]
	}
	return stringValue(cur)
}

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

const reportCSS = `
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}
body{font-family:Georgia,'Times New Roman',serif;background:#fff;color:#1c1917;padding:0.6rem;line-height:1.5;}
.pdf-wrap{max-width:1000px;margin:0 auto;}
.report-viewer{background:#fff;}
.report-header{display:flex;justify-content:space-between;align-items:flex-start;border-bottom:2px solid #1c1917;padding-bottom:0.5rem;margin-bottom:1rem;}
.report-meta{font-size:0.85rem;color:#44403c;}
.report-meta strong{color:#1c1917;}
.report-badge{display:inline-block;background:#eff6ff;color:#1e3a8a;border:1px solid #bfdbfe;border-radius:4px;padding:0.15rem 0.5rem;font-size:0.75rem;margin-left:0.3rem;}
.report-badge-warn{background:#fef2f2;color:#7f1d1d;border-color:#fecaca;}
.report-html h1{font-size:1.5rem;margin-bottom:0.5rem;}
.report-html h2{font-size:1.15rem;margin-top:1.2rem;border-bottom:1px solid #d6d3d1;padding-bottom:0.2rem;}
.report-html h3{font-size:1rem;margin-top:0.9rem;}
.report-html code{font-family:'SF Mono',Menlo,monospace;font-size:0.8rem;background:#f5f5f4;padding:0.1rem 0.25rem;border-radius:3px;}
.report-html pre{background:#f5f5f4;border:1px solid #d6d3d1;border-radius:4px;padding:0.6rem;overflow-x:auto;font-size:0.72rem;}
.report-html pre code{background:none;padding:0;}
.report-html table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.8rem;}
.report-html th,.report-html td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}
.report-html thead th{background:#f1f5f9;font-weight:700;}
h2[data-page-break-before="true"]{break-before:page;page-break-before:always;}
@media print{ @page{size:auto;margin:12mm;} body{padding:0;} .pdf-wrap{max-width:none;} }
`
