// Package extract converts uploaded material files into plain text
// suitable for storage and retrieval.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	// ErrUnsupportedType is returned for file extensions the extractor
	// does not handle.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrNoText is returned when a file yields no usable text.
	ErrNoText = errors.New("no text content found")
)

// Extractor converts material files to plain text keyed by extension.
type Extractor struct {
	parser goldmark.Markdown
}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// SupportedExtensions lists the file extensions Text accepts.
func SupportedExtensions() []string {
	return []string{".txt", ".md", ".pdf"}
}

// Text extracts plain text from the given file content. The extension
// must include the leading dot and is matched case-insensitively.
func (e *Extractor) Text(content []byte, ext string) (string, error) {
	var (
		extracted string
		err       error
	)
	switch strings.ToLower(ext) {
	case ".txt":
		extracted = string(content)
	case ".md", ".markdown":
		extracted = e.markdownText(content)
	case ".pdf":
		extracted, err = pdfText(content)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	extracted = strings.TrimSpace(extracted)
	if extracted == "" {
		return "", ErrNoText
	}
	return extracted, nil
}

// markdownText walks the goldmark AST and joins block-level text with
// blank lines, so paragraph breaks survive for downstream chunking.
func (e *Extractor) markdownText(content []byte) string {
	reader := text.NewReader(content)
	doc := e.parser.Parser().Parse(reader)

	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.Blockquote, *ast.ListItem:
			block := nodeText(n, content)
			if block != "" {
				blocks = append(blocks, block)
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			block := codeBlockText(n, content)
			if block != "" {
				blocks = append(blocks, block)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n\n")
}

// nodeText extracts text content from a node and its children.
func nodeText(n ast.Node, content []byte) string {
	var textBuilder strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			segment := v.Segment
			textBuilder.Write(segment.Value(content))
			if v.SoftLineBreak() || v.HardLineBreak() {
				textBuilder.WriteByte(' ')
			}
		case *ast.String:
			textBuilder.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(textBuilder.String())
}

// codeBlockText reads the raw lines of a code block.
func codeBlockText(n ast.Node, content []byte) string {
	var textBuilder strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		textBuilder.Write(segment.Value(content))
	}
	return strings.TrimSpace(textBuilder.String())
}

// pdfText extracts the plain text of every page in a PDF document.
func pdfText(content []byte) (string, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var textBuilder strings.Builder
	if _, err := io.Copy(&textBuilder, plainText); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return textBuilder.String(), nil
}
