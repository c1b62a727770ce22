package export

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/abdelrahmanemad10/GYM/internal/models"
)

// HistoryXML writes a user's progress history as an XML training log,
// one StrengthSet element per entry
func HistoryXML(username string, entries []models.ProgressEntry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("TrainingLog")
	root.CreateAttr("athlete", username)

	for _, entry := range entries {
		set := root.CreateElement("StrengthSet")
		set.CreateElement("Date").SetText(entry.Date)
		set.CreateElement("Day").SetText(entry.DayLabel)
		set.CreateElement("Exercise").SetText(entry.Exercise)
		set.CreateElement("WeightKilograms").SetText(fmt.Sprintf("%g", entry.Weight))
		set.CreateElement("ProgressKilograms").SetText(fmt.Sprintf("%g", entry.Progress))
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize training log: %w", err)
	}
	return data, nil
}
