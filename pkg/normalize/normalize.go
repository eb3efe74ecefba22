// Package normalize rewrites a working form definition into one with stable,
// human-legible identifiers ahead of compilation. The rewrite is modelled as
// a label substitution over the question/option/condition reference graph:
// pass one assigns fresh ids, pass two rewrites every referencing field
// through the resulting map so no edge is broken.
package normalize

import (
	"strconv"

	"github.com/goliatone/go-quoteform/pkg/form"
)

// IDMap records old → new identifier assignments for one normalization run.
type IDMap map[string]string

// Rewrite maps an identifier to its normalized form. Unknown identifiers
// pass through untouched; condition values may legitimately hold literal
// strings that are not ids at all.
func (m IDMap) Rewrite(id string) string {
	if replacement, ok := m[id]; ok {
		return replacement
	}
	return id
}

// RewriteAnswers translates an answer map keyed by pre-normalization ids into
// one keyed by normalized ids, rewriting choice selections as it goes.
// Answers for questions missing from the map keep their keys.
func (m IDMap) RewriteAnswers(answers form.Answers) form.Answers {
	if answers == nil {
		return nil
	}
	out := make(form.Answers, len(answers))
	for key, value := range answers {
		out[m.Rewrite(key)] = m.rewriteValue(value)
	}
	return out
}

func (m IDMap) rewriteValue(value any) any {
	switch typed := value.(type) {
	case string:
		return m.Rewrite(typed)
	case []string:
		out := make([]string, len(typed))
		for i, item := range typed {
			out[i] = m.Rewrite(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			if s, ok := item.(string); ok {
				out[i] = m.Rewrite(s)
			} else {
				out[i] = item
			}
		}
		return out
	default:
		// Structured answers (address, contact) carry no ids.
		return value
	}
}

// Normalize returns a copy of the definition using positional identifiers
// (q_1, q_2, ... and q_1_opt_1, q_1_opt_2, ...) plus the id map that produced
// it. The input is never mutated. Evaluating visibility on the normalized
// form against correspondingly rewritten answers yields the same result as on
// the original; that equivalence is the defining property of this function.
func Normalize(def form.FormDefinition) (form.FormDefinition, IDMap) {
	out := def.Clone()
	idMap := assignIDs(out.Questions)
	rewriteReferences(out.Questions, out.Settings.SuccessPages, idMap)
	return out, idMap
}

// assignIDs is pass one: mint positional ids for every question and option.
func assignIDs(questions []form.Question) IDMap {
	idMap := make(IDMap)
	for qi := range questions {
		newID := questionID(qi + 1)
		if old := questions[qi].ID; old != "" {
			idMap[old] = newID
		}
		questions[qi].ID = newID
		for oi := range questions[qi].Options {
			newOptID := optionID(newID, oi+1)
			if old := questions[qi].Options[oi].ID; old != "" {
				idMap[old] = newOptID
			}
			questions[qi].Options[oi].ID = newOptID
		}
	}
	return idMap
}

// rewriteReferences is pass two: push the id map through every referencing
// field. Unresolved references (dangling or forward into text literals) pass
// through unchanged rather than failing.
func rewriteReferences(questions []form.Question, pages []form.SuccessPage, idMap IDMap) {
	for qi := range questions {
		rewriteConditions(questions[qi].Conditions, idMap)
	}
	for pi := range pages {
		rewriteConditions(pages[pi].Conditions, idMap)
	}
}

func rewriteConditions(conds []form.Condition, idMap IDMap) {
	for ci := range conds {
		conds[ci].QuestionID = idMap.Rewrite(conds[ci].QuestionID)
		for vi := range conds[ci].Values {
			conds[ci].Values[vi] = idMap.Rewrite(conds[ci].Values[vi])
		}
	}
}

func questionID(position int) string {
	return "q_" + strconv.Itoa(position)
}

func optionID(questionID string, position int) string {
	return questionID + "_opt_" + strconv.Itoa(position)
}
