package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"genomewatch/internal/catalog"
	"genomewatch/internal/manifest"
	"genomewatch/internal/scan"
)

// Display names for trait sub-categories.
var subCategoryNames = map[string]string{
	"Appearance": "👁️ Appearance",
	"Taste":      "👅 Taste",
	"Smell":      "👃 Smell",
	"Metabolism": "⚡ Metabolism",
	"Athletic":   "🏃 Athletic",
	"Sleep":      "😴 Sleep",
	"Behavior":   "🧠 Behavior",
	"Sensation":  "🤕 Pain",
	"Nutrition":  "🥗 Nutrition",
	"Immune":     "🛡️ Immune",
	"Physical":   "💪 Physical",
}

// card is the view model for one finding in the report.
type card struct {
	Gene      string
	RSID      string
	Location  string
	Genotype  string
	GTClass   string // "het" or "hom"
	CardClass string // "", "critical", "high", "positive"
	Subject   string // drugs, condition or trait name
	Meaning   string
	Action    string
	Note      string
}

type traitGroupView struct {
	Name  string
	Cards []card
}

type reportView struct {
	Generated     string
	PharmCount    int
	ClinicalCount int
	TraitCount    int
	Pharm         []card
	Clinical      []card
	TraitGroups   []traitGroupView
}

func newCard(e catalog.Entry, v scan.Observed, subject, cardClass string) card {
	gtClass := "hom"
	if v.IsHet {
		gtClass = "het"
	}
	return card{
		Gene:      e.Gene,
		RSID:      e.ID,
		Location:  fmt.Sprintf("%s:%d", v.Chrom, v.Pos),
		Genotype:  v.Genotype,
		GTClass:   gtClass,
		CardClass: cardClass,
		Subject:   subject,
		Meaning:   Interpretation(e, v),
		Action:    e.Action,
		Note:      e.Note,
	}
}

// renderHTML renders the report document with the manifest block embedded
// before the closing body tag.
func renderHTML(f Findings, m *manifest.Manifest, generated time.Time) (string, error) {
	view := reportView{
		Generated:     generated.Format("2006-01-02 15:04:05"),
		PharmCount:    len(f.Pharm),
		ClinicalCount: len(f.Clinical),
		TraitCount:    len(f.Traits),
	}

	pharm := make([]PharmFinding, len(f.Pharm))
	copy(pharm, f.Pharm)
	sortPharm(pharm)
	for _, p := range pharm {
		var cardClass string
		switch p.Severity {
		case catalog.SeverityCritical:
			cardClass = "critical"
		case catalog.SeverityHigh:
			cardClass = "high"
		}
		view.Pharm = append(view.Pharm, newCard(p.Entry, p.Var, p.Drugs, cardClass))
	}

	for _, c := range f.Clinical {
		cardClass := ""
		switch {
		case IsProtective(c.Entry):
			cardClass = "positive"
		case !c.Var.IsHet:
			cardClass = "high"
		}
		view.Clinical = append(view.Clinical, newCard(c.Entry, c.Var, c.Condition, cardClass))
	}

	names, groups := traitGroups(f.Traits)
	for _, name := range names {
		display := subCategoryNames[name]
		if display == "" {
			display = name
		}
		g := traitGroupView{Name: display}
		for _, t := range groups[name] {
			g.Cards = append(g.Cards, newCard(t.Entry, t.Var, t.Trait, ""))
		}
		view.TraitGroups = append(view.TraitGroups, g)
	}

	var b strings.Builder
	if err := reportTemplate.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	block, err := manifest.Embed(m)
	if err != nil {
		return "", err
	}

	b.WriteString("\n")
	b.WriteString(block)
	b.WriteString("\n</body>\n</html>\n")
	return b.String(), nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Genome Report</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif;
               max-width: 1400px; margin: 20px auto; padding: 20px; background: #f5f7fa; color: #2c3e50; }
        .container { background: white; padding: 40px; border-radius: 15px; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        h1 { font-size: 42px; border-bottom: 4px solid #3498db; padding-bottom: 15px; }
        h2 { color: #34495e; font-size: 32px; margin-top: 50px; border-bottom: 3px solid #ecf0f1; padding-bottom: 10px; }
        .summary { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white;
                   padding: 30px; border-radius: 15px; margin: 30px 0; font-size: 20px; }
        .count { background: rgba(255,255,255,0.2); padding: 10px 20px; border-radius: 25px;
                 display: inline-block; margin: 10px 10px 0 0; font-size: 24px; font-weight: bold; }
        .variant { background: white; border: 2px solid #e0e0e0; border-left: 6px solid #3498db;
                   padding: 25px; margin: 25px 0; border-radius: 10px; }
        .critical { border-left-color: #e74c3c; background: #fef5f5; }
        .high { border-left-color: #f39c12; background: #fffbf0; }
        .positive { border-left-color: #27ae60; background: #eafaf1; }
        .gene { font-size: 28px; font-weight: bold; }
        .rsid { color: #7f8c8d; font-family: 'Courier New', monospace; font-size: 16px; }
        .genotype { background: #34495e; color: white; padding: 8px 16px; border-radius: 6px;
                    font-family: 'Courier New', monospace; font-size: 20px; font-weight: bold;
                    display: inline-block; margin: 15px 0; }
        .het { background: #f39c12; }
        .hom { background: #e74c3c; }
        .meaning { background: #fff9e6; border: 2px solid #ffd700; padding: 20px; margin: 15px 0;
                   border-radius: 8px; font-size: 18px; }
        .action { background: #fff3cd; border: 3px solid #ffc107; padding: 20px; margin: 15px 0;
                  border-radius: 8px; font-size: 17px; }
        .category-header { background: linear-gradient(135deg, #f093fb 0%, #f5576c 100%); color: white;
                           padding: 15px 25px; border-radius: 10px; display: inline-block;
                           margin: 35px 0 20px 0; font-size: 24px; font-weight: bold; }
        .disclaimer { background: #fff3cd; border: 3px solid #ffc107; padding: 30px;
                      border-radius: 10px; margin: 30px 0; font-size: 17px; }
        .note { color: #7f8c8d; font-style: italic; margin-top: 12px; font-size: 15px; }
        .empty { text-align: center; padding: 40px; color: #7f8c8d; font-size: 18px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>🧬 Your Genome Report</h1>
        <p style="font-size: 20px; color: #7f8c8d;">This report shows <strong>only</strong> the variants you actually carry.</p>

        <div class="disclaimer">
            <strong>⚠️ DISCLAIMER</strong><br><br>
            This is for <strong>educational purposes only</strong> and is NOT medical advice.
            Always consult healthcare providers before making medical decisions.
        </div>

        <div class="summary">
            <h2 style="color: white; border: none; margin-top: 0;">Your Results</h2>
            <div class="count">💊 {{.PharmCount}} Pharmacogenomic</div>
            <div class="count">🏥 {{.ClinicalCount}} Clinical</div>
            <div class="count">✨ {{.TraitCount}} Traits</div>
        </div>

        <h2>💊 Pharmacogenomics</h2>
{{if .Pharm}}{{range .Pharm}}        <div class="variant {{.CardClass}}">
            <div class="gene">{{.Gene}}</div>
            <div class="rsid">{{.RSID}} | {{.Location}}</div>
            <div class="genotype {{.GTClass}}">YOU HAVE: {{.Genotype}}</div>
            <div><strong>Affects:</strong> {{.Subject}}</div>
            <div class="meaning">{{.Meaning}}</div>
{{if .Note}}            <div class="note">📝 {{.Note}}</div>
{{end}}        </div>
{{end}}{{else}}        <p class="empty">✅ No actionable pharmacogenomic variants found</p>
{{end}}
        <h2>🏥 Clinical Variants</h2>
{{if .Clinical}}{{range .Clinical}}        <div class="variant {{.CardClass}}">
            <div class="gene">{{.Gene}}</div>
            <div class="rsid">{{.RSID}} | {{.Location}}</div>
            <div class="genotype {{.GTClass}}">YOU HAVE: {{.Genotype}}</div>
            <div><strong>Condition:</strong> {{.Subject}}</div>
            <div class="meaning">{{.Meaning}}</div>
{{if .Action}}            <div class="action"><strong>📋 Action:</strong> {{.Action}}</div>
{{end}}{{if .Note}}            <div class="note">📝 {{.Note}}</div>
{{end}}        </div>
{{end}}{{else}}        <p class="empty">✅ No major clinical variants detected</p>
{{end}}
        <h2>✨ Your Traits</h2>
{{if .TraitGroups}}{{range .TraitGroups}}        <div class="category-header">{{.Name}}</div>
{{range .Cards}}        <div class="variant">
            <div class="gene">{{.Gene}}</div>
            <div class="rsid">{{.RSID}} | {{.Location}}</div>
            <div class="genotype {{.GTClass}}">YOU HAVE: {{.Genotype}}</div>
            <div><strong>Trait:</strong> {{.Subject}}</div>
            <div class="meaning">{{.Meaning}}</div>
{{if .Note}}            <div class="note">📝 {{.Note}}</div>
{{end}}        </div>
{{end}}{{end}}{{else}}        <p class="empty">No trait variants detected</p>
{{end}}
        <div style="margin-top: 60px; padding-top: 30px; border-top: 2px solid #ecf0f1; color: #7f8c8d;">
            <ul>
                <li><strong>0/1 or 1/0</strong> = Heterozygous (one copy)</li>
                <li><strong>1/1</strong> = Homozygous (two copies)</li>
                <li>Not a comprehensive clinical test - consult healthcare providers</li>
            </ul>
            <p><strong>Generated:</strong> {{.Generated}}</p>
        </div>
    </div>
`))
