package form

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jateonwr/dem-survey/pkg/dom"
	"github.com/jateonwr/dem-survey/pkg/model"
	"github.com/jateonwr/dem-survey/pkg/tags"
	"github.com/jateonwr/dem-survey/pkg/toggle"
	"github.com/jateonwr/dem-survey/pkg/validation"
)

// Default configuration, matching the survey as deployed.
const (
	DefaultYearStart = 2539
	DefaultYearEnd   = 2568
)

// DefaultRequiredAgencyIDs lists the agency controls that must be filled.
var DefaultRequiredAgencyIDs = []string{AgencyName, SubUnit, ContactName, ContactPosition, ContactPhone, ContactEmail}

// Remote is the survey endpoint.
type Remote interface {
	FetchReferenceData(ctx context.Context) (model.ReferenceData, error)
	Submit(ctx context.Context, payload model.Payload) error
}

// PayloadChecker validates a payload against the endpoint contract before it
// is posted.
type PayloadChecker interface {
	ValidatePayload(payload model.Payload) error
}

// Option customises a Form.
type Option func(*Form)

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithToggleRules replaces the built-in toggle table.
func WithToggleRules(rules *toggle.Set) Option {
	return func(f *Form) {
		if rules != nil {
			f.rules = rules
		}
	}
}

// WithRequiredAgencyIDs replaces the required agency control ids.
func WithRequiredAgencyIDs(ids []string) Option {
	return func(f *Form) {
		f.requiredAgency = append([]string(nil), ids...)
	}
}

// WithYearRange sets the closed year range offered by year selectors.
func WithYearRange(start, end int) Option {
	return func(f *Form) {
		f.yearStart, f.yearEnd = start, end
	}
}

// WithRemote sets the endpoint client.
func WithRemote(remote Remote) Option {
	return func(f *Form) { f.remote = remote }
}

// WithPayloadChecker sets the contract check run before posting.
func WithPayloadChecker(checker PayloadChecker) Option {
	return func(f *Form) { f.checker = checker }
}

// WithModals sets the confirmation and success modal collaborator.
func WithModals(modals Modals) Option {
	return func(f *Form) {
		if modals != nil {
			f.modals = modals
		}
	}
}

// WithAlerter sets the blocking alert collaborator.
func WithAlerter(alerter Alerter) Option {
	return func(f *Form) {
		if alerter != nil {
			f.alerter = alerter
		}
	}
}

// WithPillRenderer sets the markup renderer used by tag widgets.
func WithPillRenderer(renderer tags.PillRenderer) Option {
	return func(f *Form) { f.pills = renderer }
}

// WithIDGenerator replaces the item identifier source.
func WithIDGenerator(next func() string) Option {
	return func(f *Form) {
		if next != nil {
			f.newID = next
		}
	}
}

// Form is the survey controller.
type Form struct {
	doc    *dom.Document
	agency *dom.Fragment
	items  []*Item

	rules          *toggle.Set
	requiredAgency []string
	yearStart      int
	yearEnd        int

	ref         model.ReferenceData
	initialized bool
	pending     func(ctx context.Context) error

	remote    Remote
	checker   PayloadChecker
	modals    Modals
	alerter   Alerter
	pills     tags.PillRenderer
	validator *validation.Validator
	logger    *zap.Logger
	newID     func() string
}

// New builds a form with its agency section and one default item. Reference
// data is not fetched until Init.
func New(options ...Option) *Form {
	f := &Form{
		doc:            dom.NewDocument(),
		rules:          toggle.MustCompile(DefaultRules()),
		requiredAgency: append([]string(nil), DefaultRequiredAgencyIDs...),
		yearStart:      DefaultYearStart,
		yearEnd:        DefaultYearEnd,
		modals:         nopModals{},
		alerter:        nopAlerter{},
		logger:         zap.NewNop(),
		newID:          uuid.NewString,
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	f.validator = validation.New(validation.WithCheck(phoneCheck))

	f.agency = AgencyTemplate().Instantiate(f.doc)
	for _, id := range f.requiredAgency {
		if c := f.agency.Control(id); c != nil {
			c.SetRequired(true)
		}
	}
	bindPhone(f.agency.Control(ContactPhone))

	f.items = []*Item{f.buildItem()}
	f.PopulateYears()
	f.Renumber()
	return f
}

// Init fetches reference data once and applies it to every item. Fetch
// failures are logged and leave the selectors empty.
func (f *Form) Init(ctx context.Context) {
	if f.initialized {
		return
	}
	f.initialized = true
	if f.remote == nil {
		return
	}
	ref, err := f.remote.FetchReferenceData(ctx)
	if err != nil {
		f.logger.Error("reference data fetch failed", zap.Error(err))
		return
	}
	f.logger.Debug("reference data loaded",
		zap.Int("basins", len(ref.Basins)),
		zap.Int("provinces", len(ref.Provinces)),
	)
	f.ref = ref
	f.ApplyReferenceData()
}

// Document returns the document that tracks focus and scrolling.
func (f *Form) Document() *dom.Document { return f.doc }

// Agency returns the agency section.
func (f *Form) Agency() *dom.Fragment { return f.agency }

// Items returns the live items in document order.
func (f *Form) Items() []*Item { return append([]*Item(nil), f.items...) }

// Item returns the item with the stable id, or nil.
func (f *Form) Item(id string) *Item {
	for _, it := range f.items {
		if it.id == id {
			return it
		}
	}
	return nil
}

// ReferenceData returns the fetched reference lists.
func (f *Form) ReferenceData() model.ReferenceData { return f.ref }

// Controls returns every control in document order: agency first, then each
// item.
func (f *Form) Controls() []*dom.Control {
	out := f.agency.Controls()
	for _, it := range f.items {
		out = append(out, it.frag.Controls()...)
	}
	return out
}

// Validate runs the required-field sweep over the whole form.
func (f *Form) Validate() validation.Result {
	return f.validator.Validate(f.Controls())
}
