package lib

import (
	"context"
	"fmt"

	deperrors "github.com/sms-spam-demo/deploycheck/errors"
	"github.com/sms-spam-demo/deploycheck/internal/engine"
	"github.com/sms-spam-demo/deploycheck/internal/formatters"
	"github.com/sms-spam-demo/deploycheck/internal/runtime"
)

// ValidationRunner contains all of the components necessary to run a
// validation battery.
type ValidationRunner struct {
	Cfg       *runtime.Config
	Eng       engine.CheckEngine
	Formatter formatters.ResponseFormatter
	Rw        ResultWriter
}

// NewValidationRunner returns a ValidationRunner containing all of the tooling
// necessary to run the validate command.
func NewValidationRunner(ctx context.Context, cfg *runtime.Config) (*ValidationRunner, error) {
	checks, err := engine.InitializeChecks(ctx, *cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", deperrors.ErrCannotInitializeChecks, err)
	}

	eng, err := engine.New(ctx, checks, *cfg)
	if err != nil {
		return nil, err
	}

	fmttr, err := formatters.NewForConfig(cfg.ReadOnly())
	if err != nil {
		return nil, err
	}

	return &ValidationRunner{
		Cfg:       cfg,
		Eng:       eng,
		Formatter: fmttr,
		Rw:        &runtime.ResultWriterFile{},
	}, nil
}
