package importer

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/sinscrit/train-tracking-tool/pkg/tracking"
	"github.com/sinscrit/train-tracking-tool/pkg/util"
)

// MergePlan is the detection half of a two-phase import. It captures deep
// snapshots of both collections at detection time, so a plan pending
// confirmation cannot be corrupted by an unrelated import started in the
// meantime.
type MergePlan struct {
	New       []*tracking.Service
	Existing  []*tracking.Service
	Conflicts []string
}

// PlanMerge detects (date, trainNumber) collisions between the new services
// and the existing collection. Nothing is mutated; the caller inspects
// Conflicts and calls ApplyMerge, confirmed or not.
func PlanMerge(newServices []*tracking.Service, existing []*tracking.Service) *MergePlan {
	plan := &MergePlan{
		New:      snapshotServices(newServices),
		Existing: snapshotServices(existing),
	}

	for _, service := range plan.New {
		if slices.ContainsFunc(plan.Existing, service.SameIdentity) {
			plan.Conflicts = append(plan.Conflicts,
				fmt.Sprintf("Train %s on %s", service.TrainInfo.TrainNumber, service.Date))
		}
	}

	return plan
}

// ApplyMerge executes a plan. A plan with conflicts needs explicit
// confirmation, otherwise ErrConfirmationRequired comes back and nothing
// changes. A confirmed apply removes every existing entry that collides with
// a new one and appends all new entries.
func ApplyMerge(plan *MergePlan, confirmed bool) ([]*tracking.Service, error) {
	if len(plan.Conflicts) > 0 && !confirmed {
		return nil, ErrConfirmationRequired
	}

	result := snapshotServices(plan.Existing)
	util.InPlaceFilter(&result, func(existing *tracking.Service) bool {
		return !slices.ContainsFunc(plan.New, existing.SameIdentity)
	})

	return append(result, snapshotServices(plan.New)...), nil
}

// Service carries no reference fields, so copying the struct is a full deep
// copy.
func snapshotServices(services []*tracking.Service) []*tracking.Service {
	copies := make([]*tracking.Service, 0, len(services))
	for _, service := range services {
		copied := *service
		copies = append(copies, &copied)
	}

	return copies
}
