package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-booster/internal/types"
)

// WriteDOCX packs the resume into a minimal WordprocessingML document and
// writes the zip container to w. Empty sections are omitted entirely so a
// blank resume exports as a title page, not a skeleton of headings.
func WriteDOCX(w io.Writer, data types.ResumeData) error {
	zw := zip.NewWriter(w)
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStyles},
		{"word/numbering.xml", docxNumbering},
		{"word/document.xml", buildDocumentXML(data)},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.body)); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize document: %w", err)
	}
	return nil
}

// DOCXFilename derives a download name from the resume, falling back to a
// generic one when no name is set.
func DOCXFilename(data types.ResumeData) string {
	name := strings.TrimSpace(data.FullName())
	if name == "" {
		name = "resume"
	}
	return name + ".docx"
}

const subtleColor = "555555"

func buildDocumentXML(data types.ResumeData) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	title := strings.TrimSpace(data.FullName())
	if title == "" {
		title = "Your Name"
	}
	writeStyledPara(&b, "Title", docxRun{text: title})

	if data.Profile.Profession != "" {
		writePara(&b, docxRun{text: data.Profile.Profession, bold: true})
	}
	if contact := data.ContactLine(); contact != "" {
		writePara(&b, docxRun{text: contact, color: subtleColor})
	}

	if strings.TrimSpace(data.Summary) != "" {
		writeHeading(&b, "Summary")
		for _, line := range types.SplitLines(data.Summary) {
			writePara(&b, docxRun{text: line})
		}
	}

	if len(data.Experience) > 0 {
		writeHeading(&b, "Experience")
		for _, exp := range data.Experience {
			heading := types.JoinNonEmpty(" — ", exp.JobTitle, exp.Employer)
			end := exp.EndDate
			if exp.Current {
				end = "Present"
			}
			dates := types.JoinNonEmpty(" – ", exp.StartDate, end)
			loc := types.JoinNonEmpty(", ", exp.City, exp.State)
			if heading != "" {
				writePara(&b, docxRun{text: heading, bold: true})
			}
			if meta := types.JoinNonEmpty("  •  ", dates, loc); meta != "" {
				writePara(&b, docxRun{text: meta, color: subtleColor})
			}
			for _, bullet := range types.SplitLines(exp.Responsibilities) {
				writeBullet(&b, bullet)
			}
		}
	}

	if len(data.Education) > 0 {
		writeHeading(&b, "Education")
		for _, edu := range data.Education {
			end := edu.EndDate
			if edu.Current {
				end = "Present"
			}
			if edu.School != "" {
				writePara(&b, docxRun{text: edu.School, bold: true})
			}
			if line := types.JoinNonEmpty(", ", edu.Degree, edu.FieldOfStudy); line != "" {
				writePara(&b, docxRun{text: line})
			}
			if dates := types.JoinNonEmpty(" – ", edu.StartDate, end); dates != "" {
				writePara(&b, docxRun{text: dates, color: subtleColor})
			}
		}
	}

	if skills := data.NamedSkills(); len(skills) > 0 {
		writeHeading(&b, "Skills")
		names := make([]string, len(skills))
		for i, s := range skills {
			names[i] = s.Name
		}
		writePara(&b, docxRun{text: strings.Join(names, ", ")})
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

type docxRun struct {
	text  string
	bold  bool
	color string
}

func writeHeading(b *strings.Builder, text string) {
	writeStyledPara(b, "Heading2", docxRun{text: text})
}

func writePara(b *strings.Builder, runs ...docxRun) {
	b.WriteString(`<w:p>`)
	for _, r := range runs {
		writeRun(b, r)
	}
	b.WriteString(`</w:p>`)
}

func writeStyledPara(b *strings.Builder, style string, runs ...docxRun) {
	b.WriteString(`<w:p><w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`)
	for _, r := range runs {
		writeRun(b, r)
	}
	b.WriteString(`</w:p>`)
}

func writeBullet(b *strings.Builder, text string) {
	b.WriteString(`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>`)
	writeRun(b, docxRun{text: text})
	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, r docxRun) {
	b.WriteString(`<w:r><w:rPr>`)
	if r.bold {
		b.WriteString(`<w:b/>`)
	}
	if r.color != "" {
		b.WriteString(`<w:color w:val="` + r.color + `"/>`)
	}
	b.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	xmlEscape(b, r.text)
	b.WriteString(`</w:t></w:r>`)
}

func xmlEscape(b *strings.Builder, s string) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return
	}
	b.Write(buf.Bytes())
}

const docxContentTypes = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const docxRootRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const docxDocumentRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

const docxStyles = xml.Header + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/>` +
	`<w:pPr><w:spacing w:after="120"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="56"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/>` +
	`<w:pPr><w:spacing w:before="240" w:after="80"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="30"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/>` +
	`<w:pPr><w:ind w:left="720"/></w:pPr></w:style>` +
	`</w:styles>`

const docxNumbering = xml.Header + `<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:abstractNum w:abstractNumId="0"><w:lvl w:ilvl="0">` +
	`<w:numFmt w:val="bullet"/><w:lvlText w:val="•"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>` +
	`</w:lvl></w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`
