package template

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/ycwu/lifedash/pkg/logger"
	"github.com/ycwu/lifedash/pkg/printers"
	"github.com/ycwu/lifedash/pkg/template"
)

// List prints the template catalog.
type List struct{}

func (l *List) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Templates(template.All())
	return nil
}

// Show renders one template's markdown document, optionally copying it to
// the clipboard.
type Show struct {
	Key  string
	Date string
	Copy bool
}

func (s *Show) Do(ctx context.Context) error {
	t, ok := template.Get(s.Key)
	if !ok {
		return fmt.Errorf("unknown template %q", s.Key)
	}

	md := template.Markdown(t, s.Date)
	fmt.Println(md)

	if s.Copy {
		f := color.New(color.Faint, color.Italic)
		if err := template.Copy(md); err != nil {
			// Clipboard access is best effort; the markdown is already on
			// screen.
			logger.Log().WithError(err).Warn("template: clipboard copy")
			_, _ = f.Println("clipboard unavailable")
			return nil
		}
		_, _ = f.Println("copied to clipboard")
	}
	return nil
}
