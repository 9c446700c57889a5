package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bogun-lab/facildash/pkg/domain/model"
)

func TestNewTypeStat(t *testing.T) {
	t.Run("keeps precise and rounded percentages apart", func(t *testing.T) {
		st := model.NewTypeStat("Clinic", 2, 3)
		gt.Equal(t, st.Count, 2)
		gt.B(t, st.Percentage > 66.66 && st.Percentage < 66.67).True()
		gt.Equal(t, st.RoundedPercentage, 66.67)
	})

	t.Run("full share is exactly 100", func(t *testing.T) {
		st := model.NewTypeStat("Clinic", 4, 4)
		gt.Equal(t, st.Percentage, 100.0)
		gt.Equal(t, st.RoundedPercentage, 100.0)
	})
}

func TestRound2(t *testing.T) {
	gt.Equal(t, model.Round2(33.333333), 33.33)
	gt.Equal(t, model.Round2(66.666666), 66.67)
	gt.Equal(t, model.Round2(0.005), 0.01)
	gt.Equal(t, model.Round2(0), 0.0)
}

func TestRecordIsValid(t *testing.T) {
	gt.B(t, model.Record{Region: "Seoul", FacilityType: "Clinic"}.IsValid()).True()
	gt.B(t, model.Record{Region: "", FacilityType: "Clinic"}.IsValid()).False()
	gt.B(t, model.Record{Region: "Seoul", FacilityType: ""}.IsValid()).False()
}

func TestColumnMappingValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		m := model.DefaultColumnMapping()
		gt.NoError(t, m.Validate())
		gt.Equal(t, m.Region, "시도")
		gt.Equal(t, m.FacilityType, "기관유형")
	})

	t.Run("missing names are rejected", func(t *testing.T) {
		m := model.ColumnMapping{Region: "", FacilityType: "type"}
		gt.Error(t, m.Validate())

		m = model.ColumnMapping{Region: "region", FacilityType: ""}
		gt.Error(t, m.Validate())
	})
}
