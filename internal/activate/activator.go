package activate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/config"
	"github.com/ytget/plymouth-manager/internal/model"
	"github.com/ytget/plymouth-manager/internal/platform"
	"github.com/ytget/plymouth-manager/internal/themes"
)

// Command names
const (
	UpdateAlternativesCommand = "update-alternatives"
)

// Step is one privileged command of the activation pipeline
type Step struct {
	Name string
	Argv []string
}

// String renders the step as "name: command line"
func (s Step) String() string {
	return s.Name + ": " + strings.Join(s.Argv, " ")
}

// Activator applies installed themes
type Activator struct {
	roots         []string
	descriptorExt string
	cfg           config.ActivationConfig
	runner        platform.Runner
}

// NewActivator creates an activator from the process configuration
func NewActivator(cfg config.Config, runner platform.Runner) *Activator {
	return &Activator{
		roots:         cfg.Roots(),
		descriptorExt: cfg.DescriptorExt,
		cfg:           cfg.Activation,
		runner:        runner,
	}
}

// WithPolicy returns a copy of the activator using policy (strict or lenient)
func (a *Activator) WithPolicy(policy string) *Activator {
	cp := *a
	cp.cfg.Policy = policy
	return &cp
}

// Policy returns the active failure policy
func (a *Activator) Policy() string {
	return a.cfg.Policy
}

// Resolve returns the descriptor of theme id from the first root holding a
// bundle with that name, the same bundle the scanner lists
func (a *Activator) Resolve(id string) (string, error) {
	if err := model.ValidateThemeID(id); err != nil {
		return "", err
	}
	for _, root := range a.roots {
		if descriptor, ok := themes.FindDescriptor(filepath.Join(root, id), a.descriptorExt); ok {
			return descriptor, nil
		}
	}
	return "", fmt.Errorf("%w: %s", model.ErrThemeFileMissing, id)
}

// Plan returns the steps Apply runs for the given descriptor file
func (a *Activator) Plan(descriptor string) []Step {
	steps := []Step{}
	if a.cfg.Mode == config.ModeInstallSet {
		steps = append(steps, Step{
			Name: "register",
			Argv: []string{UpdateAlternativesCommand, "--install", a.cfg.AlternativesLink, a.cfg.AlternativesName, descriptor, strconv.Itoa(a.cfg.Priority)},
		})
	}
	steps = append(steps,
		Step{
			Name: "select",
			Argv: []string{UpdateAlternativesCommand, "--set", a.cfg.AlternativesName, descriptor},
		},
		Step{
			Name: "rebuild",
			Argv: append([]string(nil), a.cfg.RebuildCommand...),
		},
	)
	return steps
}

// Apply registers theme id as the default splash and rebuilds the boot image.
// Under the strict policy the first failing step aborts the pipeline; under
// the lenient policy every step runs and all failures are reported together.
// Nothing is rolled back either way.
func (a *Activator) Apply(ctx context.Context, id string) error {
	descriptor, err := a.Resolve(id)
	if err != nil {
		return err
	}

	log := pslog.Ctx(ctx).With("theme", id, "policy", a.cfg.Policy)
	var errs []error
	for _, step := range a.Plan(descriptor) {
		log.Info("activation step", "step", step.Name, "cmd", strings.Join(step.Argv, " "))
		err := a.runner.Run(ctx, step.Argv[0], step.Argv[1:]...)
		if err == nil {
			continue
		}
		err = fmt.Errorf("%s: %w", step.Name, err)
		if a.cfg.Policy != config.PolicyLenient {
			return err
		}
		log.Warn("activation step failed, continuing", "step", step.Name, "err", err)
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	log.Info("theme applied")
	return nil
}

// Current returns the id (bundle directory name) of the theme the alternatives
// link points at, or "" when the link is missing or does not resolve to a
// descriptor.
func (a *Activator) Current() string {
	target, err := filepath.EvalSymlinks(a.cfg.AlternativesLink)
	if err != nil {
		return ""
	}
	if !strings.HasSuffix(target, a.descriptorExt) {
		return ""
	}
	return filepath.Base(filepath.Dir(target))
}
