package wire

import (
	"bytes"
	"fmt"

	"github.com/marben/irpc/irpcgen"

	fractal "github.com/marben/dist_fractal"
	"github.com/marben/dist_fractal/app"
	"github.com/marben/dist_fractal/render"
)

// MarshalBinary encodes u with the irpc primitives. Frames are large, so
// points travel as raw float64 pairs and colours as four bytes.
func (u Update) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := irpcgen.NewEncoder(&buf)
	if err := encUpdate(enc, u); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (u *Update) UnmarshalBinary(b []byte) error {
	return decUpdate(irpcgen.NewDecoder(bytes.NewReader(b)), u)
}

func encUpdate(enc *irpcgen.Encoder, u Update) error {
	if err := irpcgen.EncPointer(enc, u.Frame, "Frame", encFrame); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	if err := encControls(enc, u.Controls); err != nil {
		return fmt.Errorf("controls: %w", err)
	}
	return nil
}

func decUpdate(dec *irpcgen.Decoder, u *Update) error {
	if err := irpcgen.DecPointer(dec, &u.Frame, "Frame", decFrame); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	if err := decControls(dec, &u.Controls); err != nil {
		return fmt.Errorf("controls: %w", err)
	}
	return nil
}

func encControls(enc *irpcgen.Encoder, c app.Controls) error {
	for _, v := range []int{int(c.Kind), c.Depth, c.MaxDepth, c.SpeedMS} {
		if err := irpcgen.EncInt(enc, v); err != nil {
			return err
		}
	}
	return irpcgen.EncBool(enc, c.Playing)
}

func decControls(dec *irpcgen.Decoder, c *app.Controls) error {
	for _, v := range []*int{(*int)(&c.Kind), &c.Depth, &c.MaxDepth, &c.SpeedMS} {
		if err := irpcgen.DecInt(dec, v); err != nil {
			return err
		}
	}
	return irpcgen.DecBool(dec, &c.Playing)
}

func encFrame(enc *irpcgen.Encoder, f Frame) error {
	if err := irpcgen.EncUint64(enc, f.Seq); err != nil {
		return err
	}
	if err := irpcgen.EncInt(enc, f.Width); err != nil {
		return err
	}
	if err := irpcgen.EncInt(enc, f.Height); err != nil {
		return err
	}
	if err := irpcgen.EncSlice(enc, f.Commands, "render.Command", encCommand); err != nil {
		return fmt.Errorf("commands: %w", err)
	}
	if err := encInfo(enc, f.Info); err != nil {
		return fmt.Errorf("info: %w", err)
	}
	return nil
}

func decFrame(dec *irpcgen.Decoder, f *Frame) error {
	if err := irpcgen.DecUint64(dec, &f.Seq); err != nil {
		return err
	}
	if err := irpcgen.DecInt(dec, &f.Width); err != nil {
		return err
	}
	if err := irpcgen.DecInt(dec, &f.Height); err != nil {
		return err
	}
	if err := irpcgen.DecSlice(dec, &f.Commands, "render.Command", decCommand); err != nil {
		return fmt.Errorf("commands: %w", err)
	}
	if err := decInfo(dec, &f.Info); err != nil {
		return fmt.Errorf("info: %w", err)
	}
	return nil
}

func encCommand(enc *irpcgen.Encoder, c render.Command) error {
	if err := irpcgen.EncString(enc, c.Op); err != nil {
		return err
	}
	if err := irpcgen.EncSlice(enc, c.Points, "fractal.Point", encPoint); err != nil {
		return err
	}
	for _, b := range []uint8{c.Color.R, c.Color.G, c.Color.B, c.Color.A} {
		if err := irpcgen.EncUint8(enc, b); err != nil {
			return err
		}
	}
	return nil
}

func decCommand(dec *irpcgen.Decoder, c *render.Command) error {
	if err := irpcgen.DecString(dec, &c.Op); err != nil {
		return err
	}
	if err := irpcgen.DecSlice(dec, &c.Points, "fractal.Point", decPoint); err != nil {
		return err
	}
	for _, b := range []*uint8{&c.Color.R, &c.Color.G, &c.Color.B, &c.Color.A} {
		if err := irpcgen.DecUint8(dec, b); err != nil {
			return err
		}
	}
	return nil
}

func encPoint(enc *irpcgen.Encoder, p fractal.Point) error {
	if err := irpcgen.EncFloat64(enc, p.X); err != nil {
		return err
	}
	return irpcgen.EncFloat64(enc, p.Y)
}

func decPoint(dec *irpcgen.Decoder, p *fractal.Point) error {
	if err := irpcgen.DecFloat64(dec, &p.X); err != nil {
		return err
	}
	return irpcgen.DecFloat64(dec, &p.Y)
}

func encInfo(enc *irpcgen.Encoder, info fractal.Info) error {
	if err := irpcgen.EncInt(enc, info.Kind); err != nil {
		return err
	}
	if err := irpcgen.EncString(enc, info.Title); err != nil {
		return err
	}
	if err := irpcgen.EncString(enc, info.Rule); err != nil {
		return err
	}
	if err := irpcgen.EncInt(enc, info.Depth); err != nil {
		return err
	}
	if err := irpcgen.EncInt(enc, info.MaxDepth); err != nil {
		return err
	}
	if err := encMetrics(enc, info.Metrics); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return irpcgen.EncSlice(enc, info.Applications, "fractal.Application", func(enc *irpcgen.Encoder, a fractal.Application) error {
		if err := irpcgen.EncString(enc, a.Field); err != nil {
			return err
		}
		return irpcgen.EncString(enc, a.Text)
	})
}

func decInfo(dec *irpcgen.Decoder, info *fractal.Info) error {
	if err := irpcgen.DecInt(dec, &info.Kind); err != nil {
		return err
	}
	if err := irpcgen.DecString(dec, &info.Title); err != nil {
		return err
	}
	if err := irpcgen.DecString(dec, &info.Rule); err != nil {
		return err
	}
	if err := irpcgen.DecInt(dec, &info.Depth); err != nil {
		return err
	}
	if err := irpcgen.DecInt(dec, &info.MaxDepth); err != nil {
		return err
	}
	if err := decMetrics(dec, &info.Metrics); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return irpcgen.DecSlice(dec, &info.Applications, "fractal.Application", func(dec *irpcgen.Decoder, a *fractal.Application) error {
		if err := irpcgen.DecString(dec, &a.Field); err != nil {
			return err
		}
		return irpcgen.DecString(dec, &a.Text)
	})
}

func encMetrics(enc *irpcgen.Encoder, m fractal.Metrics) error {
	if err := irpcgen.EncInt(enc, m.Kind); err != nil {
		return err
	}
	if err := irpcgen.EncInt(enc, m.Depth); err != nil {
		return err
	}
	for _, q := range []fractal.Quantity{m.Perimeter, m.Area, m.Dimension} {
		if err := encQuantity(enc, q); err != nil {
			return err
		}
	}
	return irpcgen.EncInt(enc, m.Primitives)
}

func decMetrics(dec *irpcgen.Decoder, m *fractal.Metrics) error {
	if err := irpcgen.DecInt(dec, &m.Kind); err != nil {
		return err
	}
	if err := irpcgen.DecInt(dec, &m.Depth); err != nil {
		return err
	}
	for _, q := range []*fractal.Quantity{&m.Perimeter, &m.Area, &m.Dimension} {
		if err := decQuantity(dec, q); err != nil {
			return err
		}
	}
	return irpcgen.DecInt(dec, &m.Primitives)
}

func encQuantity(enc *irpcgen.Encoder, q fractal.Quantity) error {
	if err := irpcgen.EncString(enc, q.Formula); err != nil {
		return err
	}
	if err := irpcgen.EncFloat64(enc, q.Value); err != nil {
		return err
	}
	if err := irpcgen.EncBool(enc, q.HasValue); err != nil {
		return err
	}
	return irpcgen.EncString(enc, q.Limit)
}

func decQuantity(dec *irpcgen.Decoder, q *fractal.Quantity) error {
	if err := irpcgen.DecString(dec, &q.Formula); err != nil {
		return err
	}
	if err := irpcgen.DecFloat64(dec, &q.Value); err != nil {
		return err
	}
	if err := irpcgen.DecBool(dec, &q.HasValue); err != nil {
		return err
	}
	return irpcgen.DecString(dec, &q.Limit)
}
