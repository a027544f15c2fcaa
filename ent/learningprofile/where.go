// Code generated by ent, DO NOT EDIT.

package learningprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studypal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldUserID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldTopic, v))
}

// ProgressScore applies equality check predicate on the "progress_score" field. It's identical to ProgressScoreEQ.
func ProgressScore(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldProgressScore, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldLastUpdated, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldContainsFold(FieldUserID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldContainsFold(FieldTopic, v))
}

// WeakAreasIsNil applies the IsNil predicate on the "weak_areas" field.
func WeakAreasIsNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIsNull(FieldWeakAreas))
}

// WeakAreasNotNil applies the NotNil predicate on the "weak_areas" field.
func WeakAreasNotNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotNull(FieldWeakAreas))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotNull(FieldStrengths))
}

// ProgressScoreEQ applies the EQ predicate on the "progress_score" field.
func ProgressScoreEQ(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldProgressScore, v))
}

// ProgressScoreNEQ applies the NEQ predicate on the "progress_score" field.
func ProgressScoreNEQ(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldProgressScore, v))
}

// ProgressScoreIn applies the In predicate on the "progress_score" field.
func ProgressScoreIn(vs ...int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldProgressScore, vs...))
}

// ProgressScoreNotIn applies the NotIn predicate on the "progress_score" field.
func ProgressScoreNotIn(vs ...int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldProgressScore, vs...))
}

// ProgressScoreGT applies the GT predicate on the "progress_score" field.
func ProgressScoreGT(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldProgressScore, v))
}

// ProgressScoreGTE applies the GTE predicate on the "progress_score" field.
func ProgressScoreGTE(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldProgressScore, v))
}

// ProgressScoreLT applies the LT predicate on the "progress_score" field.
func ProgressScoreLT(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldProgressScore, v))
}

// ProgressScoreLTE applies the LTE predicate on the "progress_score" field.
func ProgressScoreLTE(v int) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldProgressScore, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.LearningProfile {
	return predicate.LearningProfile(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningProfile) predicate.LearningProfile {
	return predicate.LearningProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningProfile) predicate.LearningProfile {
	return predicate.LearningProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningProfile) predicate.LearningProfile {
	return predicate.LearningProfile(sql.NotPredicates(p))
}
