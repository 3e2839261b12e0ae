package output

import (
	"github.com/dalibo/permutate/internal/pyfmt"
)

// Printer writes one combination per line.
type Printer struct {
	buffer    *Buffer
	delimiter string
	template  *pyfmt.Format
	line      []byte
}

func NewPrinter(buffer *Buffer, delimiter string) *Printer {
	return &Printer{buffer: buffer, delimiter: delimiter}
}

// NewTemplatePrinter renders each combination with template instead of
// joining values.
func NewTemplatePrinter(buffer *Buffer, template pyfmt.Format) *Printer {
	return &Printer{buffer: buffer, template: &template}
}

func (p *Printer) Print(combination []string) error {
	if p.template != nil {
		p.line = p.template.Append(p.line[:0], combination)
		p.line = append(p.line, '\n')
		_, err := p.buffer.Write(p.line)
		return err
	}

	for i, value := range combination {
		if i > 0 && p.delimiter != "" {
			if _, err := p.buffer.WriteString(p.delimiter); err != nil {
				return err
			}
		}
		if _, err := p.buffer.WriteString(value); err != nil {
			return err
		}
	}
	return p.buffer.WriteByte('\n')
}

func (p *Printer) Flush() error {
	return p.buffer.Flush()
}
