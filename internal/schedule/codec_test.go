package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCanonicalOrder(t *testing.T) {
	c := NewCodec(nil)
	w := NewWeekly()

	require.NoError(t, w.AddSlot(Miercoles, mustSlot(t, "16:00-18:00")))
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "11:00-13:00")))
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "09:00-11:00")))

	assert.Equal(t, "Lunes 09:00-11:00, Lunes 11:00-13:00, Miércoles 16:00-18:00", c.Encode(w))
}

func TestEncodeEmpty(t *testing.T) {
	c := NewCodec(nil)
	assert.Equal(t, "", c.Encode(NewWeekly()))
	assert.Equal(t, "", c.Encode(nil))
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	c := NewCodec(nil)
	w := NewWeekly()
	require.NoError(t, w.AddSlot(Lunes, mustSlot(t, "09:00-11:00")))
	require.NoError(t, w.AddSlot(Miercoles, mustSlot(t, "16:00-18:00")))
	require.NoError(t, w.AddSlot(Viernes, mustSlot(t, "10:30-12:00")))

	got := c.Decode(c.Encode(w))

	for _, day := range AllWeekdays {
		assert.Equal(t, w.SlotsFor(day), got.SlotsFor(day), day.String())
	}
}

func TestDecodeSkipsMalformedTokens(t *testing.T) {
	c := NewCodec(nil)

	w := c.Decode("Lunes 09:00-11:00, Bogusday 99:99-bad, Martes 10:00-12:00")

	require.Len(t, w.SlotsFor(Lunes), 1)
	assert.Equal(t, "09:00-11:00", w.SlotsFor(Lunes)[0].String())
	require.Len(t, w.SlotsFor(Martes), 1)
	assert.Equal(t, "10:00-12:00", w.SlotsFor(Martes)[0].String())
	assert.Empty(t, w.SlotsFor(Miercoles))
}

func TestDecodeLenientInput(t *testing.T) {
	c := NewCodec(nil)

	tests := []struct {
		name string
		in   string
		day  Weekday
		want []string
	}{
		{"empty string", "", Lunes, nil},
		{"garbage only", "no es un horario", Lunes, nil},
		{"unaccented day", "miercoles 16:00-18:00", Miercoles, []string{"16:00-18:00"}},
		{"lowercase day", "lunes 9:00-11:00", Lunes, []string{"09:00-11:00"}},
		{"extra whitespace", "  Lunes   09:00-11:00 ,, Lunes 12:00-13:00", Lunes, []string{"09:00-11:00", "12:00-13:00"}},
		{"weekend day decodes", "Sábado 10:00-12:00", Sabado, []string{"10:00-12:00"}},
		{"conflicting legacy slot dropped", "Lunes 09:00-11:00, Lunes 10:00-12:00", Lunes, []string{"09:00-11:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := c.Decode(tt.in)
			var got []string
			for _, slot := range w.SlotsFor(tt.day) {
				got = append(got, slot.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
