package check

import (
	"context"

	"github.com/sms-spam-demo/deploycheck/internal/project"
)

// ValidatorFunc describes a function that, when executed, validates one
// aspect of the referenced project.
type ValidatorFunc = func(context.Context, project.ProjectReference) (Outcome, error)

type genericCheckDefinition struct {
	name        string
	validatorFn ValidatorFunc
	metadata    Metadata
	helpText    HelpText
}

func (d *genericCheckDefinition) Name() string {
	return d.name
}

func (d *genericCheckDefinition) Validate(ctx context.Context, pref project.ProjectReference) (Outcome, error) {
	return d.validatorFn(ctx, pref)
}

func (d *genericCheckDefinition) Metadata() Metadata {
	return d.metadata
}

func (d *genericCheckDefinition) Help() HelpText {
	return d.helpText
}

// NewGenericCheck returns a basic check implementation with the provided
// inputs. This is to enable a quick way to add additional checks to the
// default battery.
//
// Developers can always define structs with internal keys and methods, and
// have that fulfill the Check interface. However, if no internal data or
// methods are needed, then this generic check provides an easier,
// purely-functional approach.
func NewGenericCheck(
	name string,
	validatorFn ValidatorFunc,
	metadata Metadata,
	helptext HelpText,
) Check {
	return &genericCheckDefinition{
		name:        name,
		validatorFn: validatorFn,
		metadata:    metadata,
		helpText:    helptext,
	}
}
