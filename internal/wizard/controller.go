package wizard

import (
	"context"
	"errors"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/i18n"
)

// Step numbers. StepReview is the last step; submission happens only from
// there, never through Next.
const (
	StepStudent   = 1
	StepParent    = 2
	StepAddress   = 3
	StepEmergency = 4
	StepReview    = 5
)

var (
	// ErrNotOnReview is returned when Submit is called before the review step.
	ErrNotOnReview = errors.New("wizard: submit is only available on the review step")
	// ErrSubmitInFlight is returned when a submission is already outstanding.
	ErrSubmitInFlight = errors.New("wizard: a submission is already in flight")
	// ErrAlreadySubmitted is returned after a successful submission.
	ErrAlreadySubmitted = errors.New("wizard: the form was already submitted")
)

// Controller drives one parent through the five registration steps. It owns
// the draft exclusively: every mutation happens synchronously in response to
// one user action, so there is no locking. One controller per form instance.
type Controller struct {
	draft     Draft
	step      int
	submitter Submitter
	locale    i18n.Locale

	submitting bool
	submitted  bool
	errMsg     string
}

// NewController returns a controller on step 1 with an empty draft.
func NewController(s Submitter, loc i18n.Locale) *Controller {
	return &Controller{
		draft:     NewDraft(),
		step:      StepStudent,
		submitter: s,
		locale:    loc,
	}
}

func (c *Controller) Step() int          { return c.step }
func (c *Controller) Err() string        { return c.errMsg }
func (c *Controller) IsSubmitting() bool { return c.submitting }
func (c *Controller) IsSubmitted() bool  { return c.submitted }

// Draft returns a copy; callers cannot mutate the controller's state through it.
func (c *Controller) Draft() Draft { return c.draft }

// SetField merges one field into the draft. The current error banner is left
// alone; it clears on the next permitted transition.
func (c *Controller) SetField(name, value string) error {
	return c.draft.SetField(name, value)
}

// Next advances to the following step when the current step validates.
// A blocked transition keeps the step and raises the fixed incomplete-form
// message; a permitted one clears it. Next never leaves the review step.
func (c *Controller) Next() bool {
	if c.step >= StepReview {
		return false
	}
	if !ValidateStep(&c.draft, c.step) {
		c.errMsg = i18n.T(c.locale, "register.incomplete")
		return false
	}
	c.step++
	c.errMsg = ""
	return true
}

// Previous moves back one step. Always permitted, never touches the draft,
// clears the error banner.
func (c *Controller) Previous() bool {
	if c.step <= StepStudent {
		return false
	}
	c.step--
	c.errMsg = ""
	return true
}

// Submit sends the whole draft, exactly once per user action. It is a no-op
// while a submission is outstanding, so repeated clicks cannot raise a second
// POST from this instance. A failed submission surfaces the server's error
// string (or a generic fallback) and leaves the form on the review step with
// all data intact, ready to resubmit.
func (c *Controller) Submit(ctx context.Context) error {
	if c.step != StepReview {
		return ErrNotOnReview
	}
	if c.submitting {
		return ErrSubmitInFlight
	}
	if c.submitted {
		return ErrAlreadySubmitted
	}

	c.submitting = true
	c.errMsg = ""

	err := c.submitter.Submit(ctx, c.draft)
	c.submitting = false
	if err != nil {
		c.errMsg = submitErrorMessage(err, c.locale)
		return err
	}

	c.submitted = true
	return nil
}

// ConfirmationEmail is echoed back on the post-submit screen so the parent
// knows where the follow-up will land.
func (c *Controller) ConfirmationEmail() string { return c.draft.ParentEmail }

// submitErrorMessage picks the user-visible text for a failed submission.
// A server rejection carries its own message; transport and parse failures
// collapse into the generic one; the parent is not told the difference.
func submitErrorMessage(err error, loc i18n.Locale) string {
	var se *SubmitError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return i18n.T(loc, "register.submit_failed")
}
