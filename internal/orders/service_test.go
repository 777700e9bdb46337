package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

type stubOrderRepo struct {
	order        *models.Order
	orders       []models.Order
	err          error
	created      *models.Order
	updated      *models.Order
	claimOK      bool
	statusOK     bool
	assignments  []models.AssignmentHistory
	resourceCols []string
	deletedID    uuid.UUID
}

func (s *stubOrderRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubOrderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	order.ID = uuid.New()
	order.OrderNumber = 100001
	order.CreatedAt = time.Now()
	s.created = order
	return order, nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.order == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.order, nil
}

func (s *stubOrderRepo) FindByOrderNumber(ctx context.Context, number int64) (*models.Order, error) {
	if s.order == nil || s.order.OrderNumber != number {
		return nil, gorm.ErrRecordNotFound
	}
	return s.order, nil
}

func (s *stubOrderRepo) List(ctx context.Context, params pagination.Params, filters Filters) ([]models.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderRepo) ListStaleOffers(ctx context.Context, cutoff time.Time) ([]models.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderRepo) Update(ctx context.Context, order *models.Order) error {
	s.updated = order
	return s.err
}

func (s *stubOrderRepo) ReplaceCargoItems(ctx context.Context, orderID uuid.UUID, items []models.OrderCargoItem) error {
	if s.order != nil {
		s.order.CargoItems = items
	}
	return s.err
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to enums.TripStatus) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.statusOK && s.order != nil {
		s.order.TripStatus = to
	}
	return s.statusOK, nil
}

func (s *stubOrderRepo) ClaimPersonSlot(ctx context.Context, orderID uuid.UUID, slot PersonSlot, userID uuid.UUID) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if s.claimOK && s.order != nil {
		id := userID
		switch slot {
		case SlotOperationPerson:
			s.order.OperationPersonID = &id
		case SlotFleetPerson:
			s.order.FleetPersonID = &id
		case SlotCustomsPerson:
			s.order.CustomsPersonID = &id
		}
	}
	return s.claimOK, nil
}

func (s *stubOrderRepo) UpdateAssignedResource(ctx context.Context, orderID uuid.UUID, column string, subjectID uuid.UUID) error {
	s.resourceCols = append(s.resourceCols, column)
	return nil
}

func (s *stubOrderRepo) AppendAssignment(ctx context.Context, row *models.AssignmentHistory) error {
	s.assignments = append(s.assignments, *row)
	return nil
}

func (s *stubOrderRepo) ListAssignments(ctx context.Context, orderID uuid.UUID) ([]models.AssignmentHistory, error) {
	return s.assignments, nil
}

func (s *stubOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deletedID = id
	return s.err
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

type stubCustomerGate struct {
	riskStatus  *enums.RiskStatus
	blacklisted bool
	err         error
}

func (s *stubCustomerGate) FindGateFields(ctx context.Context, id uuid.UUID) (*enums.RiskStatus, bool, error) {
	return s.riskStatus, s.blacklisted, s.err
}

type stubFleet struct {
	vehicleErr error
	trailerErr error
	driverErr  error
}

func (s *stubFleet) VehicleAssignable(ctx context.Context, id uuid.UUID, now time.Time) error {
	return s.vehicleErr
}

func (s *stubFleet) TrailerAssignable(ctx context.Context, id uuid.UUID) error {
	return s.trailerErr
}

func (s *stubFleet) DriverAssignable(ctx context.Context, id uuid.UUID, now time.Time) error {
	return s.driverErr
}

type stubUserDirectory struct {
	missing bool
	err     error
}

func (s *stubUserDirectory) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return !s.missing, s.err
}

func riskStatusPtr(v enums.RiskStatus) *enums.RiskStatus { return &v }

func newOrderService(t *testing.T, repo *stubOrderRepo, gate *stubCustomerGate, fleet *stubFleet) Service {
	t.Helper()
	return newOrderServiceWithUsers(t, repo, gate, fleet, &stubUserDirectory{})
}

func newOrderServiceWithUsers(t *testing.T, repo *stubOrderRepo, gate *stubCustomerGate, fleet *stubFleet, users UserDirectory) Service {
	t.Helper()
	if gate == nil {
		gate = &stubCustomerGate{riskStatus: riskStatusPtr(enums.RiskStatusLow)}
	}
	if fleet == nil {
		fleet = &stubFleet{}
	}
	svc, err := NewService(ServiceParams{
		Repo:      repo,
		Tx:        stubTx{},
		Customers: gate,
		Fleet:     fleet,
		Users:     users,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func validDraft() CreateOrderInput {
	price := decimal.NewFromInt(1500)
	currency := enums.CurrencyEUR
	return CreateOrderInput{
		CustomerID: uuid.New(),
		From: RouteStopInput{
			Country:    "TR",
			City:       "Istanbul",
			PostalCode: "34000",
		},
		To: RouteStopInput{
			Country:    "DE",
			City:       "Munich",
			PostalCode: "80331",
		},
		CargoItems: []CargoItemInput{
			{Type: enums.CargoTypePalletized, WeightKg: 1200, LengthCm: 120, WidthCm: 80, HeightCm: 100},
		},
		QuotedPrice: &price,
		Currency:    &currency,
	}
}

func approvedOrder(sales uuid.UUID) *models.Order {
	price := decimal.NewFromInt(900)
	return &models.Order{
		ID:            uuid.New(),
		OrderNumber:   100777,
		CustomerID:    uuid.New(),
		SalesPersonID: sales,
		QuotedPrice:   &price,
		Currency:      enums.CurrencyTRY,
		TripStatus:    enums.TripStatusApproved,
	}
}

func TestNewServiceRequiresDeps(t *testing.T) {
	_, err := NewService(ServiceParams{})
	if err == nil {
		t.Fatal("expected error for missing dependencies")
	}
}

func TestCreateOrderOpensOffer(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newOrderService(t, repo, nil, nil)

	actor := Actor{UserID: uuid.New(), Role: enums.RoleSales}
	dto, err := svc.Create(context.Background(), actor, validDraft())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.TripStatus != enums.TripStatusOffer {
		t.Fatalf("expected offer status, got %s", dto.TripStatus)
	}
	if repo.created.SalesPersonID != actor.UserID {
		t.Fatal("sales person not recorded from actor")
	}
	if dto.Currency != enums.CurrencyEUR {
		t.Fatalf("expected EUR, got %s", dto.Currency)
	}
}

func TestCreateOrderDefaultsCurrency(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newOrderService(t, repo, nil, nil)

	input := validDraft()
	input.QuotedPrice = nil
	input.Currency = nil
	dto, err := svc.Create(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleAdmin}, input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.Currency != enums.CurrencyTRY {
		t.Fatalf("expected TRY default, got %s", dto.Currency)
	}
}

func TestCreateOrderForbiddenForFleet(t *testing.T) {
	svc := newOrderService(t, &stubOrderRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleFleet}, validDraft())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCreateOrderRejectsInvalidDraft(t *testing.T) {
	svc := newOrderService(t, &stubOrderRepo{}, nil, nil)

	input := validDraft()
	input.From.PostalCode = ""
	input.CargoItems[0].WeightKg = 0

	_, err := svc.Create(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleSales}, input)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(DraftErrors)
	if !ok {
		t.Fatalf("expected draft errors in details, got %T", typed.Details())
	}
	if _, ok := details["from.postalCode"]; !ok {
		t.Fatal("expected from.postalCode in details")
	}
	if _, ok := details["cargoItems.0.weightKg"]; !ok {
		t.Fatal("expected cargoItems.0.weightKg in details")
	}
}

func TestCreateOrderBlacklistedCustomer(t *testing.T) {
	gate := &stubCustomerGate{riskStatus: riskStatusPtr(enums.RiskStatusLow), blacklisted: true}
	svc := newOrderService(t, &stubOrderRepo{}, gate, nil)

	_, err := svc.Create(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleSales}, validDraft())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestCreateOrderRequiresRiskAssessment(t *testing.T) {
	gate := &stubCustomerGate{}
	svc := newOrderService(t, &stubOrderRepo{}, gate, nil)

	_, err := svc.Create(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleSales}, validDraft())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	gate := &stubCustomerGate{err: gorm.ErrRecordNotFound}
	svc := newOrderService(t, &stubOrderRepo{}, gate, nil)

	_, err := svc.Create(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleSales}, validDraft())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApproveMovesOfferForward(t *testing.T) {
	sales := uuid.New()
	order := approvedOrder(sales)
	order.TripStatus = enums.TripStatusOffer
	repo := &stubOrderRepo{order: order, statusOK: true}
	svc := newOrderService(t, repo, nil, nil)

	dto, err := svc.Approve(context.Background(), Actor{UserID: sales, Role: enums.RoleSales}, order.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if dto.TripStatus != enums.TripStatusApproved {
		t.Fatalf("expected approved, got %s", dto.TripStatus)
	}
}

func TestApproveRequiresQuotedPrice(t *testing.T) {
	order := approvedOrder(uuid.New())
	order.TripStatus = enums.TripStatusOffer
	order.QuotedPrice = nil
	svc := newOrderService(t, &stubOrderRepo{order: order}, nil, nil)

	_, err := svc.Approve(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleAdmin}, order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestApproveLostRace(t *testing.T) {
	order := approvedOrder(uuid.New())
	order.TripStatus = enums.TripStatusOffer
	svc := newOrderService(t, &stubOrderRepo{order: order, statusOK: false}, nil, nil)

	_, err := svc.Approve(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleAdmin}, order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestTransitionRoleGates(t *testing.T) {
	tests := []struct {
		name    string
		role    enums.Role
		from    enums.TripStatus
		to      enums.TripStatus
		allowed bool
	}{
		{name: "customs enters customs", role: enums.RoleCustoms, from: enums.TripStatusInTransit, to: enums.TripStatusInCustoms, allowed: true},
		{name: "customs cannot dispatch", role: enums.RoleCustoms, from: enums.TripStatusApproved, to: enums.TripStatusInTransit, allowed: false},
		{name: "operator dispatches", role: enums.RoleOperator, from: enums.TripStatusApproved, to: enums.TripStatusInTransit, allowed: true},
		{name: "fleet completes", role: enums.RoleFleet, from: enums.TripStatusInTransit, to: enums.TripStatusCompleted, allowed: true},
		{name: "sales cannot dispatch", role: enums.RoleSales, from: enums.TripStatusApproved, to: enums.TripStatusInTransit, allowed: false},
		{name: "admin anywhere legal", role: enums.RoleAdmin, from: enums.TripStatusInCustoms, to: enums.TripStatusInTransit, allowed: true},
		{name: "operator cancels in transit", role: enums.RoleOperator, from: enums.TripStatusInTransit, to: enums.TripStatusCancelled, allowed: true},
		{name: "fleet cancels approved", role: enums.RoleFleet, from: enums.TripStatusApproved, to: enums.TripStatusCancelled, allowed: true},
		{name: "customs cannot cancel", role: enums.RoleCustoms, from: enums.TripStatusInTransit, to: enums.TripStatusCancelled, allowed: false},
		{name: "sales cannot cancel in transit", role: enums.RoleSales, from: enums.TripStatusInTransit, to: enums.TripStatusCancelled, allowed: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := approvedOrder(uuid.New())
			order.TripStatus = tc.from
			svc := newOrderService(t, &stubOrderRepo{order: order, statusOK: true}, nil, nil)

			_, err := svc.Transition(context.Background(), Actor{UserID: uuid.New(), Role: tc.role}, order.ID, TransitionInput{Status: tc.to})
			if tc.allowed && err != nil {
				t.Fatalf("expected transition to succeed: %v", err)
			}
			if !tc.allowed {
				typed := pkgerrors.As(err)
				if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
					t.Fatalf("expected forbidden, got %v", err)
				}
			}
		})
	}
}

func TestTransitionRejectsIllegalEdge(t *testing.T) {
	order := approvedOrder(uuid.New())
	order.TripStatus = enums.TripStatusOffer
	svc := newOrderService(t, &stubOrderRepo{order: order, statusOK: true}, nil, nil)

	_, err := svc.Transition(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleAdmin}, order.ID, TransitionInput{Status: enums.TripStatusInCustoms})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestTransitionFoldsLegacyStatus(t *testing.T) {
	order := approvedOrder(uuid.New())
	order.TripStatus = enums.TripStatusInTransit
	repo := &stubOrderRepo{order: order, statusOK: true}
	svc := newOrderService(t, repo, nil, nil)

	dto, err := svc.Transition(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleAdmin}, order.ID, TransitionInput{Status: "TESLIM_EDILDI"})
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if dto.TripStatus != enums.TripStatusCompleted {
		t.Fatalf("expected completed, got %s", dto.TripStatus)
	}
}

func TestCancelClosedOrder(t *testing.T) {
	order := approvedOrder(uuid.New())
	order.TripStatus = enums.TripStatusCompleted
	svc := newOrderService(t, &stubOrderRepo{order: order}, nil, nil)

	_, err := svc.Cancel(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleOperator}, order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestCancelByOperatorInTransit(t *testing.T) {
	for _, role := range []enums.Role{enums.RoleOperator, enums.RoleFleet, enums.RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			order := approvedOrder(uuid.New())
			order.TripStatus = enums.TripStatusInTransit
			svc := newOrderService(t, &stubOrderRepo{order: order, statusOK: true}, nil, nil)

			dto, err := svc.Cancel(context.Background(), Actor{UserID: uuid.New(), Role: role}, order.ID)
			if err != nil {
				t.Fatalf("Cancel: %v", err)
			}
			if dto.TripStatus != enums.TripStatusCancelled {
				t.Fatalf("expected cancelled, got %s", dto.TripStatus)
			}
		})
	}
}

func TestCancelSalesOwnershipRules(t *testing.T) {
	sales := uuid.New()

	t.Run("owner withdraws offer", func(t *testing.T) {
		order := approvedOrder(sales)
		order.TripStatus = enums.TripStatusOffer
		svc := newOrderService(t, &stubOrderRepo{order: order, statusOK: true}, nil, nil)

		if _, err := svc.Cancel(context.Background(), Actor{UserID: sales, Role: enums.RoleSales}, order.ID); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
	})

	t.Run("other sales person rejected", func(t *testing.T) {
		order := approvedOrder(sales)
		order.TripStatus = enums.TripStatusOffer
		svc := newOrderService(t, &stubOrderRepo{order: order, statusOK: true}, nil, nil)

		_, err := svc.Cancel(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleSales}, order.ID)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("owner cannot cancel in transit", func(t *testing.T) {
		order := approvedOrder(sales)
		order.TripStatus = enums.TripStatusInTransit
		svc := newOrderService(t, &stubOrderRepo{order: order, statusOK: true}, nil, nil)

		_, err := svc.Cancel(context.Background(), Actor{UserID: sales, Role: enums.RoleSales}, order.ID)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}

func TestDeleteOnlyOffers(t *testing.T) {
	sales := uuid.New()
	order := approvedOrder(sales)
	repo := &stubOrderRepo{order: order}
	svc := newOrderService(t, repo, nil, nil)

	err := svc.Delete(context.Background(), Actor{UserID: sales, Role: enums.RoleSales}, order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}

	order.TripStatus = enums.TripStatusOffer
	otherSales := Actor{UserID: uuid.New(), Role: enums.RoleSales}
	err = svc.Delete(context.Background(), otherSales, order.ID)
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for another sales person, got %v", err)
	}

	if err := svc.Delete(context.Background(), Actor{UserID: sales, Role: enums.RoleSales}, order.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if repo.deletedID != order.ID {
		t.Fatal("delete not forwarded to repository")
	}
}

func TestAssignToSelfClaimsSlot(t *testing.T) {
	order := approvedOrder(uuid.New())
	repo := &stubOrderRepo{order: order, claimOK: true}
	svc := newOrderService(t, repo, nil, nil)

	actor := Actor{UserID: uuid.New(), Role: enums.RoleFleet}
	dto, err := svc.AssignToSelf(context.Background(), actor, order.ID)
	if err != nil {
		t.Fatalf("AssignToSelf: %v", err)
	}
	if dto.FleetPersonID == nil || *dto.FleetPersonID != actor.UserID {
		t.Fatal("fleet slot not claimed by actor")
	}
	if len(repo.assignments) != 1 || repo.assignments[0].Kind != enums.AssignmentKindFleet {
		t.Fatalf("expected one fleet assignment row, got %+v", repo.assignments)
	}
}

func TestAssignToSelfIdempotentForHolder(t *testing.T) {
	actor := Actor{UserID: uuid.New(), Role: enums.RoleCustoms}
	order := approvedOrder(uuid.New())
	holder := actor.UserID
	order.CustomsPersonID = &holder
	repo := &stubOrderRepo{order: order, claimOK: false}
	svc := newOrderService(t, repo, nil, nil)

	dto, err := svc.AssignToSelf(context.Background(), actor, order.ID)
	if err != nil {
		t.Fatalf("expected idempotent success, got %v", err)
	}
	if dto.CustomsPersonID == nil || *dto.CustomsPersonID != actor.UserID {
		t.Fatal("expected actor to remain slot holder")
	}
	if len(repo.assignments) != 0 {
		t.Fatal("no new assignment row expected")
	}
}

func TestAssignToSelfLosesToOtherUser(t *testing.T) {
	order := approvedOrder(uuid.New())
	winner := uuid.New()
	order.OperationPersonID = &winner
	svc := newOrderService(t, &stubOrderRepo{order: order, claimOK: false}, nil, nil)

	_, err := svc.AssignToSelf(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleOperator}, order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["assigned_to"] != winner.String() {
		t.Fatalf("expected winner in details, got %v", details["assigned_to"])
	}
}

func TestAssignToSelfUnknownActor(t *testing.T) {
	order := approvedOrder(uuid.New())
	repo := &stubOrderRepo{order: order, claimOK: true}
	svc := newOrderServiceWithUsers(t, repo, nil, nil, &stubUserDirectory{missing: true})

	_, err := svc.AssignToSelf(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleOperator}, order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for deleted user, got %v", err)
	}
	if order.OperationPersonID != nil {
		t.Fatal("slot must stay empty when the acting user does not resolve")
	}
}

func TestAssignToSelfRejectsOffer(t *testing.T) {
	order := approvedOrder(uuid.New())
	order.TripStatus = enums.TripStatusOffer
	svc := newOrderService(t, &stubOrderRepo{order: order, claimOK: true}, nil, nil)

	_, err := svc.AssignToSelf(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleOperator}, order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestAssignToSelfRequiresSlotRole(t *testing.T) {
	order := approvedOrder(uuid.New())
	svc := newOrderService(t, &stubOrderRepo{order: order}, nil, nil)

	_, err := svc.AssignToSelf(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleSales}, order.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestAssignFleetResourcesPartialSuccess(t *testing.T) {
	order := approvedOrder(uuid.New())
	repo := &stubOrderRepo{order: order}
	fleet := &stubFleet{vehicleErr: pkgerrors.New(pkgerrors.CodeStateConflict, "vehicle insurance has expired")}
	svc := newOrderService(t, repo, nil, fleet)

	vehicleID := uuid.New()
	driverID := uuid.New()
	outcomes, err := svc.AssignFleetResources(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleFleet}, order.ID, AssignFleetResourcesInput{
		VehicleID: &vehicleID,
		DriverID:  &driverID,
	})
	if err != nil {
		t.Fatalf("expected partial success, got %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected two outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Assigned || outcomes[0].Error == "" {
		t.Fatalf("expected vehicle step to fail with message, got %+v", outcomes[0])
	}
	if !outcomes[1].Assigned {
		t.Fatalf("expected driver step to land, got %+v", outcomes[1])
	}
	if len(repo.resourceCols) != 1 || repo.resourceCols[0] != "assigned_driver_id" {
		t.Fatalf("expected only driver column update, got %v", repo.resourceCols)
	}
	if len(repo.assignments) != 1 || repo.assignments[0].Kind != enums.AssignmentKindDriver {
		t.Fatalf("expected one driver assignment row, got %+v", repo.assignments)
	}
}

func TestAssignFleetResourcesAllFail(t *testing.T) {
	order := approvedOrder(uuid.New())
	fleet := &stubFleet{
		vehicleErr: pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found"),
		trailerErr: pkgerrors.New(pkgerrors.CodeStateConflict, "trailer is inactive"),
	}
	svc := newOrderService(t, &stubOrderRepo{order: order}, nil, fleet)

	vehicleID := uuid.New()
	trailerID := uuid.New()
	outcomes, err := svc.AssignFleetResources(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleFleet}, order.ID, AssignFleetResourcesInput{
		VehicleID: &vehicleID,
		TrailerID: &trailerID,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeAssignment {
		t.Fatalf("expected assignment failure, got %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected two outcomes, got %d", len(outcomes))
	}
	for _, outcome := range outcomes {
		if outcome.Assigned {
			t.Fatalf("no step should land, got %+v", outcome)
		}
	}
	if _, ok := typed.Details().([]AssignmentOutcome); !ok {
		t.Fatalf("expected outcomes in details, got %T", typed.Details())
	}
}

func TestAssignFleetResourcesRequiresInput(t *testing.T) {
	order := approvedOrder(uuid.New())
	svc := newOrderService(t, &stubOrderRepo{order: order}, nil, nil)

	_, err := svc.AssignFleetResources(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleFleet}, order.ID, AssignFleetResourcesInput{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAssignFleetResourcesRoleGate(t *testing.T) {
	vehicleID := uuid.New()

	t.Run("sales rejected", func(t *testing.T) {
		order := approvedOrder(uuid.New())
		svc := newOrderService(t, &stubOrderRepo{order: order}, nil, nil)

		_, err := svc.AssignFleetResources(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleSales}, order.ID, AssignFleetResourcesInput{VehicleID: &vehicleID})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("operator assigns", func(t *testing.T) {
		order := approvedOrder(uuid.New())
		repo := &stubOrderRepo{order: order}
		svc := newOrderService(t, repo, nil, nil)

		outcomes, err := svc.AssignFleetResources(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleOperator}, order.ID, AssignFleetResourcesInput{VehicleID: &vehicleID})
		if err != nil {
			t.Fatalf("AssignFleetResources: %v", err)
		}
		if len(outcomes) != 1 || !outcomes[0].Assigned {
			t.Fatalf("expected assigned vehicle outcome, got %+v", outcomes)
		}
	})
}

func TestUpdateApprovedScheduleOnly(t *testing.T) {
	order := approvedOrder(uuid.New())
	repo := &stubOrderRepo{order: order}
	svc := newOrderService(t, repo, nil, nil)

	eta := time.Now().Add(72 * time.Hour)
	if _, err := svc.Update(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleOperator}, order.ID, UpdateOrderInput{EstimatedArrival: &eta}); err != nil {
		t.Fatalf("schedule update: %v", err)
	}

	price := decimal.NewFromInt(2000)
	_, err := svc.Update(context.Background(), Actor{UserID: uuid.New(), Role: enums.RoleOperator}, order.ID, UpdateOrderInput{QuotedPrice: &price})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestGetByOrderNumber(t *testing.T) {
	order := approvedOrder(uuid.New())
	svc := newOrderService(t, &stubOrderRepo{order: order}, nil, nil)

	dto, err := svc.GetByOrderNumber(context.Background(), order.OrderNumber)
	if err != nil {
		t.Fatalf("GetByOrderNumber: %v", err)
	}
	if dto.OrderNumber != order.OrderNumber {
		t.Fatalf("unexpected order number %d", dto.OrderNumber)
	}

	_, err = svc.GetByOrderNumber(context.Background(), 42)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
