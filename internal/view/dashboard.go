package view

import (
	"context"

	"github.com/esimdash/esimdash-cli/internal/api/models"
	"github.com/esimdash/esimdash-cli/internal/session"
	"go.uber.org/zap"
)

// Lister fetches the ESIM list with a bearer token.
type Lister interface {
	ListESIMs(ctx context.Context, token string) (*models.ESIMList, error)
}

// Phase is one of the dashboard's mutually exclusive render states.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseLoaded
)

const (
	LoadingMessage = "Loading..."
	EmptyMessage   = "No ESIMs found"
	errorPrefix    = "Failed to load ESIMs: "
)

// Table is the rendered form of a record set.
type Table struct {
	Header []string
	Rows   [][]string
}

type DashboardView struct {
	Records []models.Record
	Shape   models.Shape
	Loading bool
	Error   string

	lister Lister
	store  session.Store
	logger *zap.Logger
}

// NewDashboardView returns a view in the loading state.
func NewDashboardView(lister Lister, store session.Store, logger *zap.Logger) *DashboardView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardView{
		Records: []models.Record{},
		Loading: true,
		lister:  lister,
		store:   store,
		logger:  logger,
	}
}

func (v *DashboardView) Phase() Phase {
	switch {
	case v.Loading:
		return PhaseLoading
	case v.Error != "":
		return PhaseError
	default:
		return PhaseLoaded
	}
}

// Empty reports a loaded view without records.
func (v *DashboardView) Empty() bool {
	return v.Phase() == PhaseLoaded && len(v.Records) == 0
}

// Load fetches the record set once. The loading flag is cleared whatever
// the outcome.
func (v *DashboardView) Load(ctx context.Context) {
	v.Loading = true
	v.Error = ""
	defer func() { v.Loading = false }()

	token, err := v.store.Get()
	if err != nil {
		v.fail(err)
		return
	}

	list, err := v.lister.ListESIMs(ctx, token)
	if err != nil {
		v.fail(err)
		return
	}

	v.Shape = list.Shape
	v.Records = list.Records
	if v.Records == nil {
		v.Records = []models.Record{}
	}
	v.logger.Debug("esims loaded", zap.Stringer("shape", list.Shape), zap.Int("records", len(v.Records)))
}

func (v *DashboardView) fail(err error) {
	v.Error = errorPrefix + err.Error()
	v.logger.Warn("failed to load esims", zap.Error(err))
}

// Table derives the header from the first record's keys. Every row carries
// its own values in its own key order.
func (v *DashboardView) Table() Table {
	return BuildTable(v.Records)
}

func BuildTable(records []models.Record) Table {
	t := Table{Header: []string{}, Rows: [][]string{}}
	if len(records) == 0 {
		return t
	}
	t.Header = records[0].Keys()
	for _, rec := range records {
		t.Rows = append(t.Rows, rec.Values())
	}
	return t
}

// Logout clears the session token and asks for the login page.
func (v *DashboardView) Logout() Navigation {
	return Logout(v.store, v.logger)
}

// Logout clears store and asks for the login page. A failed clear is logged;
// the navigation still happens.
func Logout(store session.Store, logger *zap.Logger) Navigation {
	if err := store.Clear(); err != nil && logger != nil {
		logger.Warn("failed to clear session token", zap.Error(err))
	}
	return NavigateTo(PathLogin)
}
