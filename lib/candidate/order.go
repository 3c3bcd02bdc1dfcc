package candidatehandler

import (
	candidateapimodels "jobboard-backend/models/api/candidate"
	dbmodels "jobboard-backend/models/db"
	"sort"
)

// jobCandidates returns a copy of the job candidates sorted by order
func jobCandidates(all []dbmodels.Candidate, jobID string) []dbmodels.Candidate {
	list := make([]dbmodels.Candidate, 0, len(all))
	for _, rec := range all {
		if rec.IsOfJob(jobID) {
			list = append(list, rec)
		}
	}
	sortByOrder(list)
	return list
}

func sortByOrder(list []dbmodels.Candidate) {
	sort.SliceStable(list, func(a, b int) bool {
		return list[a].Order < list[b].Order
	})
}

// resequence assigns 1..M to the job candidates in place, following their current order
func resequence(all []dbmodels.Candidate, jobID string) {
	idx := make([]int, 0, len(all))
	for k, rec := range all {
		if rec.IsOfJob(jobID) {
			idx = append(idx, k)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return all[idx[a]].Order < all[idx[b]].Order
	})
	for pos, k := range idx {
		all[k].Order = pos + 1
	}
}

func maxOrder(all []dbmodels.Candidate, jobID string) int {
	max := 0
	for _, rec := range all {
		if rec.IsOfJob(jobID) && rec.Order > max {
			max = rec.Order
		}
	}
	return max
}

// isDense expects the list sorted by order
func isDense(sorted []dbmodels.Candidate) bool {
	for k, rec := range sorted {
		if rec.Order != k+1 {
			return false
		}
	}
	return true
}

func uniqueIDs(ids []string) (list []string, set map[string]bool) {
	list = make([]string, 0, len(ids))
	set = make(map[string]bool, len(ids))
	for _, id := range ids {
		if set[id] {
			continue
		}
		set[id] = true
		list = append(list, id)
	}
	return list, set
}

func splitIDs(requested []string, applied map[string]bool) candidateapimodels.MutationResult {
	result := candidateapimodels.MutationResult{
		AppliedIDs: []string{},
		SkippedIDs: []string{},
	}
	for _, id := range requested {
		if applied[id] {
			result.AppliedIDs = append(result.AppliedIDs, id)
		} else {
			result.SkippedIDs = append(result.SkippedIDs, id)
		}
	}
	return result
}
