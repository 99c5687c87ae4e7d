package domain

// ComboType is the canonical label for which family members an order or
// browse targets. It is derived for display and never restricts who can
// actually be ordered for.
type ComboType string

const (
	ComboFullFamily     ComboType = "F-M-S-D"
	ComboFatherSon      ComboType = "F-S"
	ComboMotherDaughter ComboType = "M-D"
	ComboCouple         ComboType = "F-M"
	ComboCustom         ComboType = "Custom"
)

// Classify derives the combo type from which member groups carry a real
// size. The four canonical patterns are exact; anything else is Custom.
func Classify(sel Selection) ComboType {
	var hasF, hasM, hasS, hasD bool
	for role := range sel {
		if !sel.Chosen(role) {
			continue
		}
		switch cat, _ := RoleCategory(role); cat {
		case CategoryMen:
			hasF = true
		case CategoryWomen:
			hasM = true
		case CategoryBoys:
			hasS = true
		case CategoryGirls:
			hasD = true
		}
	}
	switch {
	case hasF && hasM && hasS && hasD:
		return ComboFullFamily
	case hasF && hasS && !hasM && !hasD:
		return ComboFatherSon
	case hasM && hasD && !hasF && !hasS:
		return ComboMotherDaughter
	case hasF && hasM && !hasS && !hasD:
		return ComboCouple
	}
	return ComboCustom
}

// MembersFor is the inverse lookup: the stock categories a canonical combo
// requires. Custom has no fixed member set.
func MembersFor(c ComboType) []Category {
	switch c {
	case ComboFullFamily:
		return []Category{CategoryMen, CategoryWomen, CategoryBoys, CategoryGirls}
	case ComboFatherSon:
		return []Category{CategoryMen, CategoryBoys}
	case ComboMotherDaughter:
		return []Category{CategoryWomen, CategoryGirls}
	case ComboCouple:
		return []Category{CategoryMen, CategoryWomen}
	}
	return nil
}
