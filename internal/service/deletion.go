package service

import (
	"encoding/json"
	"fmt"

	"ayz-shop/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

const maxBulkDeleteIDs = 50

// AccessDescriptor explains the deletion-access verdict for a caller.
type AccessDescriptor struct {
	Allowed                bool   `json:"allowed"`
	Reason                 string `json:"reason"`
	CurrentRole            string `json:"current_role"`
	HighestConfiguredRole  string `json:"highest_configured_role,omitempty"`
	RequiresPrivilegedRole bool   `json:"requires_privileged_role"`
}

type AdminCaller struct {
	Email string
	Role  string
}

// DeletionResult reports one deletion: whether a row was removed and how
// many cascade rows went with it, keyed by table.
type DeletionResult struct {
	Deleted bool           `json:"deleted"`
	Counts  map[string]int `json:"counts,omitempty"`
	Order   *models.Order  `json:"order,omitempty"`
}

type BulkDeletionResult struct {
	Requested int            `json:"requested"`
	Deleted   int            `json:"deleted"`
	Missing   []uint         `json:"missing,omitempty"`
	Failed    []uint         `json:"failed,omitempty"`
	Counts    map[string]int `json:"counts,omitempty"`
}

// DeletionAccess evaluates the role policy. When any privileged role
// (super_admin or owner) is configured, only privileged callers pass.
// Otherwise only the single highest configured role passes. An empty
// role configuration denies everyone rather than self-authorizing the
// caller.
func (s *Service) DeletionAccess(callerRole string) (AccessDescriptor, error) {
	configured, err := s.ConfiguredAdminRoles()
	if err != nil {
		return AccessDescriptor{}, err
	}

	caller := models.ParseRole(callerRole)
	desc := AccessDescriptor{CurrentRole: caller.String()}

	if len(configured) == 0 {
		desc.Reason = "no administrator roles configured"
		return desc, nil
	}

	var highest models.Role
	privilegedConfigured := false
	for _, name := range configured {
		r := models.ParseRole(name)
		if r > highest {
			highest = r
		}
		if r.Privileged() {
			privilegedConfigured = true
		}
	}
	desc.HighestConfiguredRole = highest.String()
	desc.RequiresPrivilegedRole = privilegedConfigured

	if privilegedConfigured {
		if caller.Privileged() {
			desc.Allowed = true
			return desc, nil
		}
		desc.Reason = "a privileged role is configured; only super_admin or owner may delete orders"
		return desc, nil
	}

	if caller == highest && caller != models.RoleUnknown {
		desc.Allowed = true
		return desc, nil
	}
	desc.Reason = fmt.Sprintf("only the highest configured role (%s) may delete orders", highest)
	return desc, nil
}

// DeleteOrder removes one order and its full dependency graph. A missing
// order is not an error: the intent (order absent) already holds.
func (s *Service) DeleteOrder(caller AdminCaller, orderID uint) (DeletionResult, error) {
	access, err := s.DeletionAccess(caller.Role)
	if err != nil {
		return DeletionResult{}, err
	}
	if !access.Allowed {
		return DeletionResult{}, fmt.Errorf("%w: %s", ErrForbidden, access.Reason)
	}

	counts, before, err := s.DeleteOrderGraph(orderID)
	if gorm.IsRecordNotFoundError(err) {
		return DeletionResult{Deleted: false}, nil
	}
	if err != nil {
		return DeletionResult{}, err
	}
	ordersDeleted.Inc()

	s.auditDeletion(caller, before, counts)
	return DeletionResult{Deleted: true, Counts: counts, Order: &before}, nil
}

// BulkDeleteOrders deletes each id in isolation: one failure never rolls
// back siblings.
func (s *Service) BulkDeleteOrders(caller AdminCaller, ids []uint) (BulkDeletionResult, error) {
	access, err := s.DeletionAccess(caller.Role)
	if err != nil {
		return BulkDeletionResult{}, err
	}
	if !access.Allowed {
		return BulkDeletionResult{}, fmt.Errorf("%w: %s", ErrForbidden, access.Reason)
	}

	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return BulkDeletionResult{}, fmt.Errorf("%w: no order ids supplied", ErrValidation)
	}
	if len(unique) > maxBulkDeleteIDs {
		return BulkDeletionResult{}, fmt.Errorf("%w: at most %d orders per bulk deletion", ErrValidation, maxBulkDeleteIDs)
	}

	res := BulkDeletionResult{Requested: len(unique), Counts: map[string]int{}}
	for _, id := range unique {
		counts, before, err := s.DeleteOrderGraph(id)
		switch {
		case gorm.IsRecordNotFoundError(err):
			res.Missing = append(res.Missing, id)
		case err != nil:
			logrus.WithError(err).WithField("order_id", id).Error("bulk deletion: order failed")
			res.Failed = append(res.Failed, id)
		default:
			res.Deleted++
			ordersDeleted.Inc()
			for table, n := range counts {
				res.Counts[table] += n
			}
			s.auditDeletion(caller, before, counts)
		}
	}

	summary, _ := json.Marshal(res)
	s.writeAudit(models.AuditLog{
		Actor:      caller.Email,
		Action:     "orders.bulk_delete",
		ObjectType: "order",
		Meta:       string(summary),
	})
	return res, nil
}

func (s *Service) auditDeletion(caller AdminCaller, before models.Order, counts map[string]int) {
	beforeJSON, _ := json.Marshal(before)
	meta, _ := json.Marshal(counts)
	s.writeAudit(models.AuditLog{
		Actor:      caller.Email,
		Action:     "orders.delete",
		ObjectType: "order",
		ObjectID:   fmt.Sprintf("%d", before.ID),
		Before:     string(beforeJSON),
		Meta:       string(meta),
	})
}

// writeAudit is best-effort: the deletion already committed, so a failed
// audit row is logged, not surfaced.
func (s *Service) writeAudit(entry models.AuditLog) {
	if err := s.WriteAudit(&entry); err != nil {
		logrus.WithError(err).WithField("action", entry.Action).Error("writing audit log")
	}
}
