package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSetting_Clamps(t *testing.T) {
	tests := []struct {
		name       string
		kelvin     int
		brightness int
		want       LightSetting
	}{
		{"in range", 2700, 40, LightSetting{2700, 40}},
		{"below", 10, -20, LightSetting{MinTemperature, MinBrightness}},
		{"above", 9000, 180, LightSetting{MaxTemperature, MaxBrightness}},
		{"bounds", 1000, 100, LightSetting{1000, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSetting(tt.kelvin, tt.brightness))
		})
	}
}

func TestLightSetting_Adjust(t *testing.T) {
	s := DefaultSetting()
	assert.Equal(t, LightSetting{1800, 100}, s)

	s = s.AdjustTemperature(-1000)
	assert.Equal(t, MinTemperature, s.TemperatureKelvin)

	s = s.AdjustBrightness(10)
	assert.Equal(t, MaxBrightness, s.BrightnessPercent)

	s = s.AdjustBrightness(-35).AdjustTemperature(500)
	assert.Equal(t, LightSetting{1500, 65}, s)
	assert.Equal(t, "1500K @ 65%", s.String())
}
