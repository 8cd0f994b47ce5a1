// Package extract pulls searchable text out of uploaded documents.
package extract

//go:generate mockgen -typed -source=./extract.go -destination=../mocks/mock_extractor.go -package=mocks Extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrUnsupported is returned for content types without an extractor.
var ErrUnsupported = errors.New("unsupported content type")

// Extractor returns the text content of a file.
type Extractor interface {
	Extract(ctx context.Context, r io.ReadSeeker, mimeType string) (string, error)
}

// TextExtractor handles PDF and plain text uploads.
type TextExtractor struct {
	// MaxRunes caps the stored extract; zero means unlimited.
	MaxRunes int
}

func NewTextExtractor(maxRunes int) *TextExtractor {
	return &TextExtractor{MaxRunes: maxRunes}
}

func (e *TextExtractor) Extract(ctx context.Context, r io.ReadSeeker, mimeType string) (string, error) {
	var (
		text string
		err  error
	)

	switch {
	case strings.HasPrefix(mimeType, "application/pdf"):
		text, err = extractPDF(ctx, r)
	case strings.HasPrefix(mimeType, "text/"):
		var b []byte
		b, err = io.ReadAll(r)
		text = string(b)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, mimeType)
	}
	if err != nil {
		return "", err
	}

	text = strings.Join(strings.Fields(strings.ToValidUTF8(text, "")), " ")
	if e.MaxRunes > 0 && utf8.RuneCountInString(text) > e.MaxRunes {
		text = string([]rune(text)[:e.MaxRunes])
	}
	return text, nil
}

func extractPDF(ctx context.Context, r io.ReadSeeker) (string, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pdf, err := api.ReadContext(r, conf)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	if err := api.ValidateContext(pdf); err != nil {
		return "", fmt.Errorf("failed to validate pdf: %w", err)
	}

	var sb strings.Builder
	for page := 1; page <= pdf.PageCount; page++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		content, err := pdfcpu.ExtractPageContent(pdf, page)
		if err != nil {
			return "", fmt.Errorf("failed to extract page %d: %w", page, err)
		}
		if content == nil {
			continue
		}

		raw, err := io.ReadAll(content)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", page, err)
		}
		sb.WriteString(ContentText(raw))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// ContentText collects the literal strings shown by a PDF content stream.
// Strings are separated by spaces; hex strings and font encodings are not
// decoded.
func ContentText(stream []byte) string {
	var (
		out   bytes.Buffer
		cur   bytes.Buffer
		depth int
	)

	for i := 0; i < len(stream); i++ {
		c := stream[i]

		if depth == 0 {
			if c == '(' {
				depth = 1
				cur.Reset()
			}
			continue
		}

		switch c {
		case '\\':
			if i+1 >= len(stream) {
				continue
			}
			i++
			switch esc := stream[i]; esc {
			case 'n', 'r':
				cur.WriteByte(' ')
			case 't':
				cur.WriteByte('\t')
			case '(', ')', '\\':
				cur.WriteByte(esc)
			default:
				if esc >= '0' && esc <= '7' {
					n := int(esc - '0')
					for k := 0; k < 2 && i+1 < len(stream) && stream[i+1] >= '0' && stream[i+1] <= '7'; k++ {
						i++
						n = n*8 + int(stream[i]-'0')
					}
					cur.WriteByte(byte(n))
				}
			}
		case '(':
			depth++
			cur.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				if out.Len() > 0 {
					out.WriteByte(' ')
				}
				out.Write(cur.Bytes())
				continue
			}
			cur.WriteByte(c)
		default:
			cur.WriteByte(c)
		}
	}
	return out.String()
}
