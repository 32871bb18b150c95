package model

import "strings"

type ActivityKind string

const (
	KindEvent          ActivityKind = "event"
	KindEducation      ActivityKind = "education"
	KindClub           ActivityKind = "club"
	KindDirectActivity ActivityKind = "direct_activity"
)

// KindSpec carries the names one activity kind is exposed under.
type KindSpec struct {
	Kind ActivityKind
	// URL segment: "events", "direct-activities"
	Resource string
	// URL segment of its inscriptions: "event-inscriptions"
	InscriptionResource string
	// response keys: "event" / "events"
	Singular  string
	PluralKey string
	// used in policy messages ("You may only modify your own clubs")
	Label string
	// query parameter naming the parent activity on inscription lists
	ParentParam string
}

var Kinds = []KindSpec{
	{
		Kind: KindEvent, Resource: "events", InscriptionResource: "event-inscriptions",
		Singular: "event", PluralKey: "events", Label: "events", ParentParam: "event_id",
	},
	{
		Kind: KindEducation, Resource: "educations", InscriptionResource: "education-inscriptions",
		Singular: "education", PluralKey: "educations", Label: "educations", ParentParam: "education_id",
	},
	{
		Kind: KindClub, Resource: "clubs", InscriptionResource: "club-inscriptions",
		Singular: "club", PluralKey: "clubs", Label: "clubs", ParentParam: "club_id",
	},
	{
		Kind: KindDirectActivity, Resource: "direct-activities", InscriptionResource: "direct-activity-inscriptions",
		Singular: "direct_activity", PluralKey: "direct_activities", Label: "direct activities", ParentParam: "direct_activity_id",
	},
}

func SpecFor(kind ActivityKind) (KindSpec, bool) {
	for _, k := range Kinds {
		if k.Kind == kind {
			return k, true
		}
	}
	return KindSpec{}, false
}

// InscriptionLabel: "event inscriptions", "direct activity inscriptions".
func (k KindSpec) InscriptionLabel() string {
	return strings.ReplaceAll(k.Singular, "_", " ") + " inscriptions"
}
