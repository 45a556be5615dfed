package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/pairpot/internal/curve"
	"github.com/san-kum/pairpot/internal/export"
	"github.com/san-kum/pairpot/internal/storage"
)

type outputFlags struct {
	format string
	out    string
	width  int
	height int
	save   bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", "ascii", "output format (ascii, csv, json, png, svg)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&o.width, "width", 0, "plot width (default 80 cols or 800 px)")
	cmd.Flags().IntVar(&o.height, "height", 0, "plot height (default 15 rows or 600 px)")
	cmd.Flags().BoolVar(&o.save, "save", false, "save curves to the data directory")
}

func (o *outputFlags) size(cols, rows, px, py int) (int, int) {
	w, h := o.width, o.height
	if o.format == "png" || o.format == "svg" {
		cols, rows = px, py
	}
	if w <= 0 {
		w = cols
	}
	if h <= 0 {
		h = rows
	}
	return w, h
}

// emit renders set in the requested format, writes it to --out or stdout,
// and stores it when --save is set. Nothing is written or saved unless
// rendering succeeds.
func (o *outputFlags) emit(stdout io.Writer, kind string, params map[string]float64, labels map[string]string, set curve.Set) error {
	if o.format == "png" && o.out == "" {
		return fmt.Errorf("png output needs --out")
	}

	var buf bytes.Buffer
	if err := o.render(&buf, set); err != nil {
		return err
	}

	if o.out != "" {
		if err := os.WriteFile(o.out, buf.Bytes(), 0644); err != nil {
			return err
		}
	} else if _, err := stdout.Write(buf.Bytes()); err != nil {
		return err
	}

	if !o.save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(kind, params, labels, set)
	if err != nil {
		return err
	}
	logrus.WithField("id", id).Info("curves saved")
	fmt.Fprintf(os.Stderr, "saved: %s\n", id)
	return nil
}

func (o *outputFlags) render(w io.Writer, set curve.Set) error {
	width, height := o.size(80, 15, 800, 600)
	switch o.format {
	case "ascii":
		graph, err := export.ASCII(set, width, height)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, graph)
		return err
	case "csv":
		return export.CSV(w, set)
	case "json":
		return export.JSON(w, set)
	case "png":
		return export.RenderChart(w, set, export.FormatPNG, width, height)
	case "svg":
		return export.RenderChart(w, set, export.FormatSVG, width, height)
	default:
		return fmt.Errorf("unknown format: %s", o.format)
	}
}
