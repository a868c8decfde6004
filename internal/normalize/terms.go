package normalize

import (
	"propellus-site/internal/domain/entity"
)

// Terms maps terms-of-services[0]: title, last update date, a rich intro
// and the numbered clauses.
func (n Normalizer) Terms(doc Doc) *entity.Section {
	entry, ok := doc.Entry()
	if !ok {
		return nil
	}
	s := entity.NewSection(SectionTerms)
	s.Title = str(entry, "title")
	s.SetField("last_update_date", str(entry, "last_update_date"))
	textBlock(s, entry, "", "intro")
	for _, raw := range list(entry, "sections") {
		clause := entity.NewSection(SectionTerms)
		clause.Title = str(raw, "section_heading")
		textBlock(clause, raw, "", "section_detail")
		s.Items = append(s.Items, *clause)
	}
	return s
}
