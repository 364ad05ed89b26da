package logger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"

	// Gruvbox dark
	colorTime      = "\x1b[38;5;245m"
	colorComponent = "\x1b[38;5;108m"
	colorKey       = "\x1b[38;5;109m"
	colorWarn      = "\x1b[38;5;214m"
	colorError     = "\x1b[38;5;167m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  r.texture  Resolved material  material=OAK_PLANKS tier=vanilla"
type minimalEncoder struct {
	zapcore.Encoder // Base encoder keeps With() fields working
	color           bool
	fields          []zapcore.Field
}

func newMinimalEncoder(color bool) *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		color:   color,
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	fields := make([]zapcore.Field, len(enc.fields))
	copy(fields, enc.fields)
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		color:   enc.color,
		fields:  fields,
	}
}

// AddString and friends route through the base encoder; the fields captured by
// With() are kept separately so EncodeEntry can print them.
func (enc *minimalEncoder) AddString(key, value string) {
	enc.fields = append(enc.fields, zap.String(key, value))
}

func (enc *minimalEncoder) AddInt64(key string, value int64) {
	enc.fields = append(enc.fields, zap.Int64(key, value))
}

func (enc *minimalEncoder) AddBool(key string, value bool) {
	enc.fields = append(enc.fields, zap.Bool(key, value))
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := bufferPool.Get()

	final.AppendString(enc.paint(colorTime, ent.Time.Format("15:04:05")))

	// Level: only shown when it is not INFO
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(enc.levelString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(enc.paint(colorComponent, abbreviateName(ent.LoggerName)))
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	all := append(append([]zapcore.Field{}, enc.fields...), fields...)
	if len(all) > 0 {
		final.AppendString("  ")
		final.AppendString(enc.formatFields(all))
	}

	final.AppendString("\n")
	return final, nil
}

func (enc *minimalEncoder) paint(color, s string) string {
	if !enc.color {
		return s
	}
	return color + s + colorReset
}

func (enc *minimalEncoder) levelString(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return enc.paint(colorTime, "DEBUG")
	case zapcore.WarnLevel:
		return enc.paint(colorBold+colorWarn, "WARN")
	default:
		return enc.paint(colorBold+colorError, level.CapitalString())
	}
}

// abbreviateName shortens component names: resolve.texture -> r.texture
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

func (enc *minimalEncoder) formatFields(fields []zapcore.Field) string {
	values := make([]string, 0, len(fields))
	for _, field := range fields {
		values = append(values, enc.paint(colorKey, field.Key)+"="+fieldValue(field))
	}
	return strings.Join(values, " ")
}

// fieldValue extracts the value from a zap field, handling the common types
func fieldValue(field zapcore.Field) string {
	switch field.Type {
	case zapcore.StringType:
		return field.String
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return fmt.Sprintf("%d", field.Integer)
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", uint64(field.Integer))
	case zapcore.Float64Type:
		return strconv.FormatFloat(math.Float64frombits(uint64(field.Integer)), 'g', -1, 64)
	case zapcore.Float32Type:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(field.Integer))), 'g', -1, 32)
	case zapcore.BoolType:
		return fmt.Sprintf("%t", field.Integer == 1)
	case zapcore.DurationType:
		return fmt.Sprintf("%dms", field.Integer/1_000_000)
	case zapcore.ErrorType:
		if err, ok := field.Interface.(error); ok {
			return err.Error()
		}
	}
	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface)
	}
	return ""
}
