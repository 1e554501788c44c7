package formatters

import (
	"context"

	"github.com/sms-spam-demo/deploycheck/validation"
)

// FormatterFunc describes a function that formats the check validation
// results.
type FormatterFunc = func(context.Context, validation.Results) (response []byte, formattingError error)
