package pipeline

import "strings"

// OutsideTag marks words that belong to no entity
const OutsideTag = "O"

// EntityTypes are the entity types of the Vietnamese NER model in label id order
var EntityTypes = []string{
	"ADDRESS", "SKILL", "EMAIL", "PERSON", "PHONENUMBER",
	"MISCELLANEOUS", "QUANTITY", "PERSONTYPE", "ORGANIZATION", "PRODUCT",
	"IP", "LOCATION", "DATETIME", "EVENT", "URL",
}

// Labels is the tag vocabulary: B- and I- for every entity type, then O
var Labels = buildLabels()

var labelIDs = buildLabelIDs()

func buildLabels() []string {
	labels := make([]string, 0, 2*len(EntityTypes)+1)
	for _, entityType := range EntityTypes {
		labels = append(labels, "B-"+entityType, "I-"+entityType)
	}
	return append(labels, OutsideTag)
}

func buildLabelIDs() map[string]int {
	ids := make(map[string]int, len(Labels))
	for id, label := range Labels {
		ids[label] = id
	}
	return ids
}

// LabelID returns the id of a tag
func LabelID(label string) (int, bool) {
	id, ok := labelIDs[label]
	return id, ok
}

// LabelName returns the tag of an id
func LabelName(id int) (string, bool) {
	if id < 0 || id >= len(Labels) {
		return "", false
	}
	return Labels[id], true
}

// entityTypeAliases maps the short types of common Vietnamese NER models
// (PER, LOC, ORG, MISC and friends) onto the vocabulary
var entityTypeAliases = map[string]string{
	"PER":   "PERSON",
	"LOC":   "LOCATION",
	"ORG":   "ORGANIZATION",
	"MISC":  "MISCELLANEOUS",
	"DATE":  "DATETIME",
	"TIME":  "DATETIME",
	"PHONE": "PHONENUMBER",
}

// vocabularyType returns the vocabulary entity type of a model label.
// Labels outside the vocabulary report false and are tagged O by the tagger.
func vocabularyType(label string) (string, bool) {
	entityType := strings.ToUpper(normalizeEntityType(label))
	if alias, ok := entityTypeAliases[entityType]; ok {
		entityType = alias
	}
	if _, ok := LabelID("B-" + entityType); !ok {
		return "", false
	}
	return entityType, true
}

// normalizeEntityType removes B- and I- prefixes from NER labels
func normalizeEntityType(label string) string {
	if strings.HasPrefix(label, "B-") || strings.HasPrefix(label, "I-") {
		return label[2:]
	}
	return label
}

// isType reports whether tag is a B- or I- tag of entityType
func isType(tag, entityType string) bool {
	return tag == "B-"+entityType || tag == "I-"+entityType
}
