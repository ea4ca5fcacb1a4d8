package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"beamlab/internal/config"
	"beamlab/internal/diagram"
	"beamlab/internal/export"
	"beamlab/internal/member"
	"beamlab/internal/storage"
	"beamlab/internal/viz"
)

var (
	dataDir    string
	preset     string
	points     int
	memberName string
	quantity   string
	outFile    string
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beamlab",
		Short: "beam internal force and deflection lab",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive inspector on the demo model
			model := config.GetPreset("simple_udl")
			members, err := model.Build()
			if err == nil {
				err = viz.RunInspector(members)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".beamlab", "data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [model.yaml]",
		Short: "compute envelopes, sample diagrams, store the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeModel,
	}
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset model")
	analyzeCmd.Flags().IntVar(&points, "points", 0, "sample points per member (0 = model setting)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored diagrams",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&memberName, "member", "", "plot only this member")
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "chart width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "chart height")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	diagramCmd := &cobra.Command{
		Use:   "diagram [model.yaml]",
		Short: "render force and deflection diagrams",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderDiagrams,
	}
	diagramCmd.Flags().StringVar(&preset, "preset", "", "use preset model")
	diagramCmd.Flags().IntVar(&points, "points", 0, "sample points per member (0 = model setting)")
	diagramCmd.Flags().StringVar(&memberName, "member", "", "render only this member")
	diagramCmd.Flags().IntVar(&plotWidth, "width", 70, "chart width")
	diagramCmd.Flags().IntVar(&plotHeight, "height", 8, "chart height")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [model.yaml]",
		Short: "export a diagram as a standalone svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&preset, "preset", "", "use preset model")
	exportSVGCmd.Flags().IntVar(&points, "points", 0, "sample points (0 = model setting)")
	exportSVGCmd.Flags().StringVar(&memberName, "member", "", "member to draw (default: first)")
	exportSVGCmd.Flags().StringVar(&quantity, "quantity", "moment", "shear|moment|axial|slope|deflection")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "diagram.svg", "output file")

	exportImageCmd := &cobra.Command{
		Use:   "export-image [model.yaml]",
		Short: "export a diagram image via gonum/plot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportImage,
	}
	exportImageCmd.Flags().StringVar(&preset, "preset", "", "use preset model")
	exportImageCmd.Flags().IntVar(&points, "points", 0, "sample points (0 = model setting)")
	exportImageCmd.Flags().StringVar(&memberName, "member", "", "member to draw (default: first)")
	exportImageCmd.Flags().StringVar(&quantity, "quantity", "moment", "shear|moment|axial|slope|deflection")
	exportImageCmd.Flags().StringVar(&outFile, "out", "diagram.png", "output file (.png, .svg, .pdf)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [model.yaml]",
		Short: "interactively scrub along members",
		Args:  cobra.MaximumNArgs(1),
		RunE:  inspectModel,
	}
	inspectCmd.Flags().StringVar(&preset, "preset", "", "use preset model")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in models",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(analyzeCmd, listCmd, plotCmd, exportCmd, diagramCmd, exportSVGCmd, exportImageCmd, inspectCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadModel resolves the model from --preset or a yaml file argument.
func loadModel(args []string) (*config.Model, error) {
	if preset != "" {
		m := config.GetPreset(preset)
		if m == nil {
			return nil, fmt.Errorf("unknown preset %q (see 'beamlab presets')", preset)
		}
		return m, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("need a model file or --preset")
	}
	return config.Load(args[0])
}

func sampleCount(m *config.Model) int {
	if points >= 2 {
		return points
	}
	return m.Samples
}

func analyzeModel(cmd *cobra.Command, args []string) error {
	model, err := loadModel(args)
	if err != nil {
		return err
	}
	members, err := model.Build()
	if err != nil {
		return err
	}

	n := sampleCount(model)
	summaries := make([]storage.MemberSummary, 0, len(members))
	rows := make([]storage.SampleRow, 0, len(members)*n)

	for _, m := range members {
		summaries = append(summaries, storage.Summarize(m))

		d, err := m.Sample(member.ShearForce, n)
		if err != nil {
			return err
		}
		for i, x := range d.X {
			row := storage.SampleRow{Member: m.Name(), X: x, Shear: d.Y[i]}
			row.Moment, _ = m.Moment(x)
			row.Axial, _ = m.Axial(x)
			row.Slope, _ = m.Slope(x)
			row.Deflection, _ = m.Deflection(x)
			rows = append(rows, row)
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(model.Name, n, summaries, rows)
	if err != nil {
		return err
	}

	fmt.Printf("model: %s\n", model.Name)
	fmt.Printf("members: %d, samples: %d\n", len(members), n)
	fmt.Printf("run saved: %s\n\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MEMBER\tLENGTH\tVMAX\tVMIN\tMMAX\tMMIN\tNMAX\tNMIN")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%.3f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			s.Name, s.Length,
			s.MaxShear, s.MinShear,
			s.MaxMoment, s.MinMoment,
			s.MaxAxial, s.MinAxial,
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tMEMBERS\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Members),
			run.Samples,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	byMember, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(byMember) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n\n", meta.Model)

	names := make([]string, 0, len(byMember))
	for name := range byMember {
		if memberName != "" && name != memberName {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return fmt.Errorf("member %q not found in run", memberName)
	}
	sort.Strings(names)

	series := []struct {
		caption string
		value   func(r storage.SampleRow) float64
	}{
		{"shear force V", func(r storage.SampleRow) float64 { return r.Shear }},
		{"bending moment M", func(r storage.SampleRow) float64 { return r.Moment }},
		{"deflection delta", func(r storage.SampleRow) float64 { return r.Deflection }},
	}

	for _, name := range names {
		rows := byMember[name]
		for _, s := range series {
			data := make([]float64, len(rows))
			for i, r := range rows {
				data[i] = s.value(r)
			}
			fmt.Println(asciigraph.Plot(data,
				asciigraph.Height(plotHeight),
				asciigraph.Width(plotWidth),
				asciigraph.Caption(fmt.Sprintf("%s: %s", name, s.caption)),
			))
			fmt.Println()
		}
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func renderDiagrams(cmd *cobra.Command, args []string) error {
	model, err := loadModel(args)
	if err != nil {
		return err
	}
	members, err := model.Build()
	if err != nil {
		return err
	}

	n := sampleCount(model)
	for _, m := range members {
		if memberName != "" && m.Name() != memberName {
			continue
		}
		out, err := diagram.RenderMember(m, n, plotWidth, plotHeight)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

// resolveTarget picks the member to draw: --member by name, else the first.
func resolveTarget(args []string) (*config.Model, *member.Member, member.Quantity, error) {
	model, err := loadModel(args)
	if err != nil {
		return nil, nil, "", err
	}
	members, err := model.Build()
	if err != nil {
		return nil, nil, "", err
	}
	q, err := parseQuantity(quantity)
	if err != nil {
		return nil, nil, "", err
	}

	target := members[0]
	if memberName != "" {
		target = nil
		for _, m := range members {
			if m.Name() == memberName {
				target = m
				break
			}
		}
		if target == nil {
			return nil, nil, "", fmt.Errorf("member %q not found in model", memberName)
		}
	}
	return model, target, q, nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	model, target, q, err := resolveTarget(args)
	if err != nil {
		return err
	}
	if err := export.SaveDiagramSVG(target, q, sampleCount(model), 800, 400, outFile); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportImage(cmd *cobra.Command, args []string) error {
	model, target, q, err := resolveTarget(args)
	if err != nil {
		return err
	}
	if err := export.SaveDiagramImage(target, q, sampleCount(model), outFile); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func inspectModel(cmd *cobra.Command, args []string) error {
	model, err := loadModel(args)
	if err != nil {
		return err
	}
	members, err := model.Build()
	if err != nil {
		return err
	}
	return viz.RunInspector(members)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMEMBERS\tSAMPLES")
	for _, name := range config.ListPresets() {
		m := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, len(m.Members), m.Samples)
	}
	return w.Flush()
}

func parseQuantity(s string) (member.Quantity, error) {
	q := member.Quantity(strings.ToLower(s))
	for _, known := range member.Quantities {
		if q == known {
			return q, nil
		}
	}
	return "", fmt.Errorf("unknown quantity %q (shear, moment, axial, slope, deflection)", s)
}
