package types

// Clone returns a deep copy of the record. Slices and bullet lists are
// copied so mutating the clone never aliases the original.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r

	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, e := range r.Experience {
		e.Description = append(BulletList(nil), e.Description...)
		out.Experience[i] = e
	}

	out.Education = append([]EducationEntry(nil), r.Education...)

	out.Projects = make([]ProjectEntry, len(r.Projects))
	for i, p := range r.Projects {
		p.Description = append(BulletList(nil), p.Description...)
		p.Technologies = append([]string(nil), p.Technologies...)
		out.Projects[i] = p
	}

	out.Certifications = append([]CertificationEntry(nil), r.Certifications...)
	out.Skills = append([]string(nil), r.Skills...)
	out.Achievements = append([]string(nil), r.Achievements...)
	out.ExtraCurricular = append([]string(nil), r.ExtraCurricular...)

	return out
}
