// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import "github.com/pdiddy/affiliation-engine/pkg/types"

// DefaultConfig returns the production vocabulary for the Shivaji
// University bibliometrics workflow. Exclusion is enforced uniformly
// for every institution; the historical Saveetha exemption can be
// restored by flipping its EnforceExclusion flag in a vocabulary file.
func DefaultConfig() types.VocabularyConfig {
	return types.VocabularyConfig{
		Institutions: []types.InstitutionRule{
			{Name: "Shivaji University", EnforceExclusion: true, MultiDepartment: true},
			{Name: "Saveetha University", EnforceExclusion: true, MultiDepartment: false},
		},
		Exclusions: []string{
			"College",
			"Affiliated to",
			"Rajarambapu Institute of Technology",
			"Bhogawati Mahavidyalaya",
			"ADCET",
			"AMGOI",
			"Ashokrao Mane Group of Institutes",
			"Sanjay Ghodawat Group of Institutions",
			"Patangrao Kadam",
			"Centre for PG Studies",
			"D. Y. Patil Education Society",
		},
		Departments: []string{
			"Department of Agrochemicals and Pest Management",
			"Department of Bio-Chemistry",
			"Department of Bio-Technology",
			"Department of Botany",
			"Department of Chemistry",
			"Department of Commerce and Management",
			"Department of Commerce and Management M.B.A. Unit",
			"Department of Computer Science",
			"Department of Economics",
			"FE Department of Education",
			"Department of Electronics",
			"Department of English",
			"Department of Environmental Science",
			"Department of Food Science and Technology",
			"Department of Foreign Languages",
			"Department of Geography",
			"Department of Hindi",
			"Department of History",
			"Department of Journalism and Mass Communication",
			"Department of Law",
			"Department of Library and Information Science",
			"Department of Lifelong Learning and Extension",
			"Department of Marathi",
			"Department of Mathematics",
			"Department of Mass Communication",
			"Department of Microbiology",
			"Department of Music and Dramatics",
			"Department of Physics",
			"FE Department of Political Science",
			"Department of Psychology",
			"Department of Sociology",
			"Department of Sports",
			"Department of Statistics",
			"Department of Technology",
			"Department of Zoology",
			"School of Nanoscience and Biotechnology",
			"Department of Biochemistry",
			"Department of Biotechnology",
			"Yashwantrao Chavan School of Rural Development",
			"UGC Center For Coaching For Competitive Examinations UGC Center",
		},
		Aliases: []types.AliasRule{
			{Phrase: "Department of Agro-Chemicals and Pest Management", Canonical: "Department of Agrochemicals and Pest Management"},
			{Phrase: "Chemistry Department", Canonical: "Department of Chemistry"},
			{Phrase: "Analytical Chemistry Laboratory", Canonical: "Department of Chemistry"},
			{Phrase: "Dept. of Chemistry", Canonical: "Department of Chemistry"},
			{Phrase: "Physics Department", Canonical: "Department of Physics"},
			{Phrase: "Air Glass Laboratory", Canonical: "Department of Physics"},
			{Phrase: "Dept. of Phys.", Canonical: "Department of Physics"},
			{Phrase: "Dept. of Physics", Canonical: "Department of Physics"},
			{Phrase: "Dept. Phys.", Canonical: "Department of Physics"},
		},
		Consolidations: []types.ConsolidationRule{
			{
				Canonical: "School of Nanoscience and Biotechnology",
				Patterns: []string{
					`school of nanoscience\b`,
					`school of nano ?science (and|&) (bio ?technology|technology)`,
					`department of nano ?science (and|&) nano ?technology`,
				},
				RequireAny: []string{
					"biotechnology",
					"bio technology",
					"nanotechnology",
					"nano technology",
				},
			},
		},
	}
}

// Default compiles the built-in vocabulary. The tables are static, so
// compilation cannot fail; a failure here is a programming error.
func Default() *Vocabulary {
	v, err := Compile(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return v
}
