// Package catalog holds the fixed content model of the study: the
// Variant A form fields, the Variant B question list, the scenario
// description and the canned German responses used when no provider
// is reachable.
package catalog

import "github.com/momorit/mein-formularprojekt/internal/entity"

// Scenario is the building-energy case every participant works on.
const Scenario = "Mehrfamilienhaus Baujahr 1965, WDVS-Sanierung Eingangsfassade Südseite, 140mm Mineralwolle, Rotklinkerfassade, 10 Wohneinheiten, Ölheizung im Keller"

// SystemPromptChat is the instruction for the static-form chat assistant.
const SystemPromptChat = "Du bist ein Experte für Formulare und hilfst beim Ausfüllen. Antworte auf Deutsch, präzise und hilfreich."

// SystemPromptDialog is the instruction for the turn-by-turn dialog.
const SystemPromptDialog = "Du bist ein erfahrener Energieberater und führst einen Frage-Antwort-Dialog zur Gebäude-Energieberatung. " +
	"Sprich freundlich, professionell und präzise, immer auf Deutsch. " +
	"Beantworte Rückfragen zur aktuellen Hauptfrage, ohne automatisch zur nächsten Frage zu springen."

// FormFields returns the Variant A field catalog. Callers receive a fresh
// slice so decorated copies never leak back into the catalog.
func FormFields() []entity.FormField {
	return []entity.FormField{
		{
			ID:          "building_type",
			Label:       "GEBÄUDEART",
			Type:        "select",
			Options:     []string{"Einfamilienhaus", "Mehrfamilienhaus", "Reihenhaus", "Doppelhaushälfte"},
			Required:    true,
			Placeholder: "Bitte wählen Sie die Gebäudeart",
			Hint:        "Wählen Sie die Gebäudeart aus der Liste aus. Bei Unsicherheit können Sie den Chat-Assistenten fragen.",
		},
		{
			ID:          "construction_year",
			Label:       "BAUJAHR",
			Type:        "number",
			Required:    true,
			Placeholder: "z.B. 1965",
			Hint:        "Geben Sie das Jahr ein, in dem das Gebäude ursprünglich errichtet wurde (z.B. 1965).",
		},
		{
			ID:          "facade_area",
			Label:       "FASSADENFLÄCHE (m²)",
			Type:        "number",
			Required:    true,
			Placeholder: "Gesamtfläche aller zu dämmenden Fassaden",
			Hint:        "Berechnung: Länge × Höhe der Außenwände abzgl. Fenster/Türen. Für komplexe Berechnungen nutzen Sie den Chat-Assistenten.",
		},
		{
			ID:          "insulation_spec",
			Label:       "GEPLANTE DÄMMSPEZIFIKATION",
			Type:        "textarea",
			Required:    true,
			Placeholder: "z.B. 140mm Mineralwolle, WDVS-System, Eingangsfassade mit Spaltklinker...",
			Hint:        "Beschreiben Sie detailliert: Dämmstoff, Dicke, Ausführung (z.B. \"140mm Mineralwolle WDVS mit Riemchen-Verkleidung\").",
		},
		{
			ID:          "heating_type",
			Label:       "HEIZUNGSART",
			Type:        "select",
			Options:     []string{"Ölheizung", "Gasheizung", "Fernwärme", "Wärmepumpe", "Sonstige"},
			Required:    true,
			Placeholder: "Aktuelle Heizungsart",
			Hint:        "Geben Sie die aktuell installierte Heizungsart an. Im Szenario: Ölheizung im Keller.",
		},
		{
			ID:          "window_type",
			Label:       "FENSTERTYP",
			Type:        "select",
			Options:     []string{"Einfachverglasung", "Zweifachverglasung", "Dreifachverglasung"},
			Required:    true,
			Placeholder: "Überwiegender Fenstertyp",
			Hint:        "Wählen Sie den überwiegend verbauten Fenstertyp. Das Baujahr gibt oft einen Hinweis auf die Verglasung.",
		},
		{
			ID:          "renovation_plans",
			Label:       "GEPLANTE SANIERUNGSMASSNAHMEN",
			Type:        "textarea",
			Required:    true,
			Placeholder: "Welche Maßnahmen sind geplant?",
			Hint:        "Beschreiben Sie alle geplanten Maßnahmen, z.B. Fassadendämmung, Fenstertausch, Heizungsmodernisierung.",
		},
		{
			ID:          "budget",
			Label:       "BUDGET (€)",
			Type:        "number",
			Required:    true,
			Placeholder: "Geplantes Gesamtbudget",
			Hint:        "Geben Sie das geplante Gesamtbudget der Sanierung in Euro an. Grobe Schätzungen sind ausreichend.",
		},
	}
}

// FormInstructions returns the per-field instruction strings of the
// static catalog, in field order.
func FormInstructions() []string {
	fields := FormFields()
	hints := make([]string, 0, len(fields))
	for _, f := range fields {
		hints = append(hints, f.Hint)
	}
	return hints
}

// DialogQuestions returns the Variant B question list. Most questions are
// deliberately easy, one is hard.
func DialogQuestions() []entity.DialogQuestion {
	return []entity.DialogQuestion{
		{
			ID:         "building_year",
			Question:   "In welchem Jahr wurde Ihr Gebäude erbaut?",
			Field:      "BAUJAHR",
			Type:       "number",
			Difficulty: "easy",
			Required:   true,
		},
		{
			ID:         "total_units",
			Question:   "Wie viele Wohneinheiten befinden sich in Ihrem Gebäude?",
			Field:      "ANZAHL_WOHNEINHEITEN",
			Type:       "number",
			Difficulty: "easy",
			Required:   true,
		},
		{
			ID:         "total_living_space",
			Question:   "Wie groß ist die gesamte Wohnfläche Ihres Gebäudes in Quadratmetern?",
			Field:      "WOHNFLÄCHE_GESAMT",
			Type:       "number",
			Difficulty: "easy",
			Required:   true,
		},
		{
			ID:         "building_address",
			Question:   "Wie lautet die vollständige Adresse Ihres Gebäudes?",
			Field:      "GEBÄUDEADRESSE",
			Type:       "text",
			Difficulty: "easy",
			Required:   true,
		},
		{
			ID:         "insulation_system",
			Question:   "Welches Dämmsystem planen Sie für die Fassadensanierung?",
			Field:      "DÄMMSYSTEM",
			Type:       "text",
			Difficulty: "easy",
			Required:   true,
		},
		{
			ID:         "complex_energy_analysis",
			Question:   "Führen Sie eine detaillierte energetische Bewertung durch: Berechnen Sie die U-Werte vor und nach der Sanierung, den erwarteten Primärenergiebedarf, die CO2-Einsparungen und erstellen Sie eine Wirtschaftlichkeitsberechnung mit Amortisationszeit für die geplante WDVS-Maßnahme.",
			Field:      "ENERGETISCHE_ANALYSE_DETAIL",
			Type:       "textarea",
			Difficulty: "hard",
			Required:   true,
		},
	}
}

// Canned responses for the terminal fallback step. German, deterministic,
// keyed by intent in generation.Fallback.
const (
	CannedHelp = "Gerne helfe ich Ihnen! Können Sie spezifizieren, womit Sie Unterstützung benötigen? " +
		"Ich kann Ihnen bei der Berechnung von Flächen, Dämmspezifikationen oder anderen technischen Details helfen."

	CannedInstructions = "Füllen Sie die Felder der Reihe nach aus. Zu jedem Feld finden Sie einen Hinweis, " +
		"und bei Unklarheiten können Sie jederzeit den Chat-Assistenten fragen."

	CannedQuestion = "Können Sie Ihre Frage spezifischer stellen? Ich kann Ihnen bei der Berechnung von Flächen, " +
		"Dämmspezifikationen oder anderen technischen Details helfen."

	CannedDialogAck = "Vielen Dank für Ihre Antwort. Ich habe das notiert."

	CannedGeneral = "Ich helfe Ihnen gerne bei Fragen zur Gebäude-Energieberatung! " +
		"Ihr Szenario: Mehrfamilienhaus (Baujahr 1965), WDVS-Sanierung der Eingangsfassade mit 140mm Mineralwolle. " +
		"Fragen Sie mich zu: Dämmung, Kosten, Mieterhöhung, rechtlichen Aspekten oder technischen Details."

	CannedDialogComplete = "Alle Fragen sind beantwortet, die Beratung ist abgeschlossen. Sie können Ihre Angaben jetzt speichern."
)

// FieldHelp returns field-specific canned help for a dialog question, used
// when the help request cannot be answered by a live provider.
func FieldHelp(fieldKey string) (string, bool) {
	text, ok := fieldHelp[fieldKey]
	return text, ok
}

var fieldHelp = map[string]string{
	"BAUJAHR":              "Gemeint ist das Jahr, in dem das Gebäude ursprünglich errichtet wurde. Im Szenario: 1965. Das Baujahr ist wichtig für energetische Standards und mögliche Förderungen.",
	"ANZAHL_WOHNEINHEITEN": "Zählen Sie alle separaten Wohnungen im Gebäude. Im Szenario handelt es sich um ein Mehrfamilienhaus mit 10 Wohneinheiten.",
	"WOHNFLÄCHE_GESAMT":    "Die Summe der Wohnflächen aller Einheiten in Quadratmetern. Schätzungen sind in Ordnung, z.B. 10 Einheiten à 60-80 m².",
	"GEBÄUDEADRESSE":       "Geben Sie Straße, Hausnummer, Postleitzahl und Ort des Gebäudes an.",
	"DÄMMSYSTEM":           "Im Szenario ist ein WDVS (Wärmedämmverbundsystem) mit 140mm Mineralwolle für die Eingangsfassade vorgesehen.",
	"ENERGETISCHE_ANALYSE_DETAIL": "Diese Frage ist bewusst anspruchsvoll. Nennen Sie die Punkte, die Sie einschätzen können: U-Werte vor/nach Sanierung, Primärenergiebedarf, CO2-Einsparung und Amortisationszeit. Unvollständige Angaben sind zulässig.",
}
