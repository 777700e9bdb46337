package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/logger"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
	"github.com/rotalog/rotalog-backend/pkg/types"
)

// Actor identifies the authenticated user performing an operation.
type Actor struct {
	UserID uuid.UUID
	Role   enums.Role
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CustomerGate exposes the customer fields that gate offer creation.
type CustomerGate interface {
	FindGateFields(ctx context.Context, id uuid.UUID) (riskStatus *enums.RiskStatus, blacklisted bool, err error)
}

// UserDirectory confirms that an acting user still exists.
type UserDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// FleetResources exposes the checks performed before attaching resources.
type FleetResources interface {
	VehicleAssignable(ctx context.Context, id uuid.UUID, now time.Time) error
	TrailerAssignable(ctx context.Context, id uuid.UUID) error
	DriverAssignable(ctx context.Context, id uuid.UUID, now time.Time) error
}

// Service defines order-level operations.
type Service interface {
	Create(ctx context.Context, actor Actor, input CreateOrderInput) (*OrderDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	GetByOrderNumber(ctx context.Context, number int64) (*OrderDTO, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*OrderList, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateOrderInput) (*OrderDTO, error)
	Approve(ctx context.Context, actor Actor, id uuid.UUID) (*OrderDTO, error)
	Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*OrderDTO, error)
	Transition(ctx context.Context, actor Actor, id uuid.UUID, input TransitionInput) (*OrderDTO, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	AssignToSelf(ctx context.Context, actor Actor, id uuid.UUID) (*OrderDTO, error)
	AssignFleetResources(ctx context.Context, actor Actor, id uuid.UUID, input AssignFleetResourcesInput) ([]AssignmentOutcome, error)
}

type service struct {
	repo      Repository
	tx        txRunner
	customers CustomerGate
	fleet     FleetResources
	users     UserDirectory
	logg      *logger.Logger
	now       func() time.Time
}

// ServiceParams bundles the dependencies required to build an order service.
type ServiceParams struct {
	Repo      Repository
	Tx        txRunner
	Customers CustomerGate
	Fleet     FleetResources
	Users     UserDirectory
	Logger    *logger.Logger
}

// NewService builds an order service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Customers == nil {
		return nil, fmt.Errorf("customer gate required")
	}
	if params.Fleet == nil {
		return nil, fmt.Errorf("fleet resources required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("user directory required")
	}
	return &service{
		repo:      params.Repo,
		tx:        params.Tx,
		customers: params.Customers,
		fleet:     params.Fleet,
		users:     params.Users,
		logg:      params.Logger,
		now:       time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, actor Actor, input CreateOrderInput) (*OrderDTO, error) {
	if actor.Role != enums.RoleSales && actor.Role != enums.RoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only sales can open offers")
	}
	if draftErrs := ValidateDraft(input); draftErrs != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "offer draft is invalid").WithDetails(draftErrs)
	}

	riskStatus, blacklisted, err := s.customers.FindGateFields(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	if blacklisted || (riskStatus != nil && *riskStatus == enums.RiskStatusBlacklist) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "customer is blacklisted")
	}
	if riskStatus == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "customer has no risk assessment")
	}

	currency := enums.CurrencyTRY
	if input.Currency != nil {
		currency = *input.Currency
	}

	order := &models.Order{
		CustomerID:    input.CustomerID,
		SalesPersonID: actor.UserID,
		From:          routeStopFromInput(input.From),
		To:            routeStopFromInput(input.To),
		Transferable:  input.Transferable,
		QuotedPrice:   input.QuotedPrice,
		Currency:      currency,
		LoadingDate:   input.LoadingDate,
		DeadlineDate:  input.DeadlineDate,
		TripStatus:    enums.TripStatusOffer,
		CargoItems:    cargoItemsFromInput(input.CargoItems),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderID(ctx, created.ID.String()), "offer created")
	}
	return FromModel(created), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(order), nil
}

func (s *service) GetByOrderNumber(ctx context.Context, number int64) (*OrderDTO, error) {
	order, err := s.repo.FindByOrderNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return FromModel(order), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters Filters) (*OrderList, error) {
	rows, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	list := &OrderList{Orders: make([]OrderDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			list.NextCursor = pagination.EncodeCursor(pagination.Cursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			})
			break
		}
		list.Orders = append(list.Orders, *FromModel(&rows[i]))
	}
	return list, nil
}

func (s *service) Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateOrderInput) (*OrderDTO, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	// Offers are freely editable by their sales desk; approved orders only
	// accept schedule adjustments from the executing roles.
	editingOffer := order.TripStatus == enums.TripStatusOffer
	if editingOffer {
		if actor.Role != enums.RoleAdmin && !(actor.Role == enums.RoleSales && order.SalesPersonID == actor.UserID) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "offer belongs to another sales person")
		}
	} else {
		if order.TripStatus.IsTerminal() {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order is closed")
		}
		if !scheduleOnlyUpdate(input) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only schedule fields can change after approval")
		}
		if actor.Role == enums.RoleSales {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "sales cannot edit approved orders")
		}
	}

	if draftErrs := validateUpdate(draftFromOrder(order), input); draftErrs != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order update is invalid").WithDetails(draftErrs)
	}

	applyUpdate(order, input)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Update(ctx, order); err != nil {
			return err
		}
		if input.CargoItems != nil {
			return repo.ReplaceCargoItems(ctx, order.ID, cargoItemsFromInput(input.CargoItems))
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
	}
	return s.GetByID(ctx, id)
}

func (s *service) Approve(ctx context.Context, actor Actor, id uuid.UUID) (*OrderDTO, error) {
	if actor.Role != enums.RoleSales && actor.Role != enums.RoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only sales can approve offers")
	}

	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.TripStatus != enums.TripStatusOffer {
		return nil, transitionError(order.TripStatus, enums.TripStatusApproved)
	}
	if order.QuotedPrice == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "offer cannot be approved without a quoted price")
	}

	return s.transition(ctx, order, enums.TripStatusApproved)
}

// Cancel closes a non-terminal order. Operator, fleet, and admin may cancel
// at any stage; sales may only withdraw offers they opened.
func (s *service) Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.TripStatus.IsTerminal() {
		return nil, transitionError(order.TripStatus, enums.TripStatusCancelled)
	}
	if err := cancelPermitted(actor, order); err != nil {
		return nil, err
	}
	return s.transition(ctx, order, enums.TripStatusCancelled)
}

func (s *service) Transition(ctx context.Context, actor Actor, id uuid.UUID, input TransitionInput) (*OrderDTO, error) {
	target, err := enums.ParseTripStatus(string(input.Status))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown trip status")
	}

	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if target == enums.TripStatusCancelled {
		if err := cancelPermitted(actor, order); err != nil {
			return nil, err
		}
	} else if !roleMayTransition(actor.Role, target) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "role cannot apply this transition")
	}
	if !enums.CanTransition(order.TripStatus, target) {
		return nil, transitionError(order.TripStatus, target)
	}
	return s.transition(ctx, order, target)
}

func (s *service) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return err
	}
	if order.TripStatus != enums.TripStatusOffer {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "only offers can be deleted")
	}
	if actor.Role != enums.RoleAdmin && !(actor.Role == enums.RoleSales && order.SalesPersonID == actor.UserID) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "offer belongs to another sales person")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	return nil
}

// AssignToSelf fills the actor's role slot on the order. The repository
// performs a conditional update, so when two users race for the same slot
// the loser receives a conflict naming the winner.
func (s *service) AssignToSelf(ctx context.Context, actor Actor, id uuid.UUID) (*OrderDTO, error) {
	slot, kind, ok := slotForRole(actor.Role)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "role has no order slot to claim")
	}

	exists, err := s.users.Exists(ctx, actor.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up acting user")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "acting user not found")
	}

	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.TripStatus == enums.TripStatusOffer {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "offer must be approved before it can be claimed")
	}
	if order.TripStatus.IsTerminal() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order is closed")
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		claimed, err := repo.ClaimPersonSlot(ctx, id, slot, actor.UserID)
		if err != nil {
			return err
		}
		if !claimed {
			return errSlotTaken
		}
		return repo.AppendAssignment(ctx, &models.AssignmentHistory{
			OrderID:          id,
			Kind:             kind,
			SubjectID:        actor.UserID,
			AssignedByUserID: actor.UserID,
		})
	})
	if err != nil {
		if errors.Is(err, errSlotTaken) {
			current, loadErr := s.loadOrder(ctx, id)
			details := map[string]any{"slot": string(kind)}
			if loadErr == nil {
				if holder := slotHolder(current, slot); holder != nil {
					if *holder == actor.UserID {
						return FromModel(current), nil
					}
					details["assigned_to"] = holder.String()
				}
			}
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slot already claimed").WithDetails(details)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "claim order slot")
	}

	return s.GetByID(ctx, id)
}

var errSlotTaken = errors.New("slot already claimed")

// AssignFleetResources attaches a vehicle, trailer, and driver to the order.
// The steps are independent: each one either lands or reports why it did
// not, and the call fails only when every requested step failed.
func (s *service) AssignFleetResources(ctx context.Context, actor Actor, id uuid.UUID, input AssignFleetResourcesInput) ([]AssignmentOutcome, error) {
	if actor.Role != enums.RoleFleet && actor.Role != enums.RoleOperator && actor.Role != enums.RoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only operations or fleet can assign resources")
	}
	if input.VehicleID == nil && input.TrailerID == nil && input.DriverID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no resources given")
	}

	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.TripStatus == enums.TripStatusOffer || order.TripStatus.IsTerminal() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order does not accept resource assignment")
	}

	now := s.now().UTC()
	var outcomes []AssignmentOutcome
	var failures error

	step := func(kind enums.AssignmentKind, subjectID uuid.UUID, column string, check func() error) {
		outcome := AssignmentOutcome{Kind: kind}
		err := check()
		if err == nil {
			err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
				repo := s.repo.WithTx(tx)
				if err := repo.UpdateAssignedResource(ctx, id, column, subjectID); err != nil {
					return err
				}
				return repo.AppendAssignment(ctx, &models.AssignmentHistory{
					OrderID:          id,
					Kind:             kind,
					SubjectID:        subjectID,
					AssignedByUserID: actor.UserID,
				})
			})
		}
		if err != nil {
			outcome.Error = assignmentStepMessage(err)
			failures = multierr.Append(failures, fmt.Errorf("%s: %w", kind, err))
		} else {
			outcome.Assigned = true
		}
		outcomes = append(outcomes, outcome)
	}

	if input.VehicleID != nil {
		step(enums.AssignmentKindVehicle, *input.VehicleID, "assigned_vehicle_id", func() error {
			return s.fleet.VehicleAssignable(ctx, *input.VehicleID, now)
		})
	}
	if input.TrailerID != nil {
		step(enums.AssignmentKindTrailer, *input.TrailerID, "assigned_trailer_id", func() error {
			return s.fleet.TrailerAssignable(ctx, *input.TrailerID)
		})
	}
	if input.DriverID != nil {
		step(enums.AssignmentKindDriver, *input.DriverID, "assigned_driver_id", func() error {
			return s.fleet.DriverAssignable(ctx, *input.DriverID, now)
		})
	}

	assignedAny := false
	for _, outcome := range outcomes {
		if outcome.Assigned {
			assignedAny = true
			break
		}
	}
	if !assignedAny {
		return outcomes, pkgerrors.Wrap(pkgerrors.CodeAssignment, failures, "no resource could be assigned").WithDetails(outcomes)
	}

	if failures != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithOrderID(ctx, id.String()), "partial resource assignment: "+failures.Error())
	}
	return outcomes, nil
}

func (s *service) transition(ctx context.Context, order *models.Order, to enums.TripStatus) (*OrderDTO, error) {
	moved, err := s.repo.UpdateStatus(ctx, order.ID, order.TripStatus, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update status")
	}
	if !moved {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order changed concurrently")
	}
	if s.logg != nil {
		ctx := s.logg.WithFields(s.logg.WithOrderID(ctx, order.ID.String()), map[string]any{
			"from": order.TripStatus.String(),
			"to":   to.String(),
		})
		s.logg.Info(ctx, "trip status changed")
	}
	return s.GetByID(ctx, order.ID)
}

func (s *service) loadOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func transitionError(from, to enums.TripStatus) error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, "transition not allowed").WithDetails(map[string]string{
		"from": from.String(),
		"to":   to.String(),
	})
}

// roleMayTransition encodes which roles drive which lifecycle moves.
// Cancellation has its own permission check because it also looks at offer
// ownership; admin may do anything the lifecycle itself allows.
func roleMayTransition(role enums.Role, to enums.TripStatus) bool {
	if role == enums.RoleAdmin {
		return true
	}
	switch to {
	case enums.TripStatusInTransit, enums.TripStatusCompleted:
		return role == enums.RoleOperator || role == enums.RoleFleet
	case enums.TripStatusInCustoms:
		return role == enums.RoleOperator || role == enums.RoleCustoms
	case enums.TripStatusApproved:
		return role == enums.RoleSales
	default:
		return false
	}
}

// cancelPermitted gates cancellation per role: operator, fleet, and admin
// may cancel any non-terminal order, sales only offers they own.
func cancelPermitted(actor Actor, order *models.Order) error {
	switch actor.Role {
	case enums.RoleAdmin, enums.RoleOperator, enums.RoleFleet:
		return nil
	case enums.RoleSales:
		if order.TripStatus != enums.TripStatusOffer {
			return pkgerrors.New(pkgerrors.CodeForbidden, "sales may only cancel offers")
		}
		if order.SalesPersonID != actor.UserID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "offer belongs to another sales person")
		}
		return nil
	default:
		return pkgerrors.New(pkgerrors.CodeForbidden, "role cannot cancel orders")
	}
}

func slotForRole(role enums.Role) (PersonSlot, enums.AssignmentKind, bool) {
	switch role {
	case enums.RoleOperator:
		return SlotOperationPerson, enums.AssignmentKindOperation, true
	case enums.RoleFleet:
		return SlotFleetPerson, enums.AssignmentKindFleet, true
	case enums.RoleCustoms:
		return SlotCustomsPerson, enums.AssignmentKindCustoms, true
	case enums.RoleAdmin:
		return SlotOperationPerson, enums.AssignmentKindOperation, true
	default:
		return "", "", false
	}
}

func slotHolder(order *models.Order, slot PersonSlot) *uuid.UUID {
	switch slot {
	case SlotOperationPerson:
		return order.OperationPersonID
	case SlotFleetPerson:
		return order.FleetPersonID
	case SlotCustomsPerson:
		return order.CustomsPersonID
	default:
		return nil
	}
}

func assignmentStepMessage(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		return typed.Message()
	}
	return err.Error()
}

func scheduleOnlyUpdate(input UpdateOrderInput) bool {
	return input.From == nil && input.To == nil && input.CargoItems == nil &&
		input.Transferable == nil && input.QuotedPrice == nil && input.Currency == nil
}

func applyUpdate(order *models.Order, input UpdateOrderInput) {
	if input.From != nil {
		order.From = routeStopFromInput(*input.From)
	}
	if input.To != nil {
		order.To = routeStopFromInput(*input.To)
	}
	if input.Transferable != nil {
		order.Transferable = *input.Transferable
	}
	if input.QuotedPrice != nil {
		order.QuotedPrice = input.QuotedPrice
	}
	if input.Currency != nil {
		order.Currency = *input.Currency
	}
	if input.LoadingDate != nil {
		order.LoadingDate = input.LoadingDate
	}
	if input.DeadlineDate != nil {
		order.DeadlineDate = input.DeadlineDate
	}
	if input.EstimatedArrival != nil {
		order.EstimatedArrival = input.EstimatedArrival
	}
}

func draftFromOrder(order *models.Order) CreateOrderInput {
	items := make([]CargoItemInput, 0, len(order.CargoItems))
	for _, item := range order.CargoItems {
		items = append(items, CargoItemInput{
			Type:        item.Type,
			WeightKg:    item.WeightKg,
			LengthCm:    item.LengthCm,
			WidthCm:     item.WidthCm,
			HeightCm:    item.HeightCm,
			Description: item.Description,
		})
	}
	currency := order.Currency
	return CreateOrderInput{
		CustomerID:   order.CustomerID,
		From:         routeStopToInput(order.From),
		To:           routeStopToInput(order.To),
		CargoItems:   items,
		Transferable: order.Transferable,
		QuotedPrice:  order.QuotedPrice,
		Currency:     &currency,
		LoadingDate:  order.LoadingDate,
		DeadlineDate: order.DeadlineDate,
	}
}

func routeStopFromInput(input RouteStopInput) types.RouteStop {
	return types.RouteStop{
		Country:      strings.TrimSpace(input.Country),
		City:         strings.TrimSpace(input.City),
		District:     strings.TrimSpace(input.District),
		PostalCode:   strings.TrimSpace(input.PostalCode),
		Address:      strings.TrimSpace(input.Address),
		ContactName:  strings.TrimSpace(input.ContactName),
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		ContactEmail: strings.ToLower(strings.TrimSpace(input.ContactEmail)),
	}
}

func routeStopToInput(stop types.RouteStop) RouteStopInput {
	return RouteStopInput{
		Country:      stop.Country,
		City:         stop.City,
		District:     stop.District,
		PostalCode:   stop.PostalCode,
		Address:      stop.Address,
		ContactName:  stop.ContactName,
		ContactPhone: stop.ContactPhone,
		ContactEmail: stop.ContactEmail,
	}
}

func cargoItemsFromInput(items []CargoItemInput) []models.OrderCargoItem {
	rows := make([]models.OrderCargoItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.OrderCargoItem{
			Type:        item.Type,
			WeightKg:    item.WeightKg,
			LengthCm:    item.LengthCm,
			WidthCm:     item.WidthCm,
			HeightCm:    item.HeightCm,
			Description: item.Description,
		})
	}
	return rows
}
