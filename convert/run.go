package convert

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stc/common"
	"stc/state"
)

// selectTargets resolves the target style from flags with configuration
// values as fallback and stores the outcome in the environment.
func selectTargets(env *state.LocalEnv, cmd *cli.Command) error {
	var err error

	family := cmd.String("family")
	if len(family) == 0 {
		family = env.Cfg.Conversion.Family
	}
	if env.Family, err = common.ParseStyleFamily(family); err != nil {
		return fmt.Errorf("bad style family: %w", err)
	}

	emphasis := cmd.String("emphasis")
	if len(emphasis) == 0 {
		emphasis = env.Cfg.Conversion.Emphasis
	}
	if env.Emphasis, err = common.ParseEmphasis(emphasis); err != nil {
		return fmt.Errorf("bad emphasis: %w", err)
	}

	env.ASCII = cmd.Bool("ascii") || env.Cfg.Conversion.ASCII
	env.Random = cmd.Bool("random")

	excludeFamilies := cmd.StringSlice("exclude-families")
	if len(excludeFamilies) == 0 {
		excludeFamilies = env.Cfg.Conversion.ExcludeFamilies
	}
	for _, name := range excludeFamilies {
		f, err := common.ParseStyleFamily(name)
		if err != nil {
			return fmt.Errorf("bad excluded style family: %w", err)
		}
		env.ExcludeFamilies = append(env.ExcludeFamilies, f)
	}

	excludeEmphases := cmd.StringSlice("exclude-emphases")
	if len(excludeEmphases) == 0 {
		excludeEmphases = env.Cfg.Conversion.ExcludeEmphases
	}
	for _, name := range excludeEmphases {
		e, err := common.ParseEmphasis(name)
		if err != nil {
			return fmt.Errorf("bad excluded emphasis: %w", err)
		}
		env.ExcludeEmphases = append(env.ExcludeEmphases, e)
	}
	return nil
}

// pickStyler builds the per-character style source for the run.
func pickStyler(env *state.LocalEnv) styler {
	switch {
	case env.ASCII:
		// folding back to plain characters is just styling with the defaults
		return fixedStyler{stylePair{common.StyleFamilySerif, common.EmphasisNormal}}
	case env.Random:
		seed := uint64(env.Cfg.Conversion.RandomSeed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return newRandomStyler(seed, env.ExcludeFamilies, env.ExcludeEmphases)
	default:
		return fixedStyler{stylePair{env.Family, env.Emphasis}}
	}
}

// readInput returns the text to convert: positional arguments joined with a
// single space, or everything from stdin when no arguments were given.
func readInput(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		text := cmd.Args().Get(0)
		for i := 1; i < cmd.Args().Len(); i++ {
			text += " " + cmd.Args().Get(i)
		}
		return text, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("unable to read stdin: %w", err)
	}
	return string(data), nil
}

func writeOutput(cmd *cli.Command, text string) error {
	dst := cmd.String("output")
	if len(dst) == 0 {
		_, err := fmt.Println(text)
		return err
	}
	return os.WriteFile(dst, []byte(text+"\n"), 0644)
}

// Run implements the convert command.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	if err := selectTargets(env, cmd); err != nil {
		return err
	}

	text, err := readInput(cmd)
	if err != nil {
		return err
	}
	if len(text) == 0 {
		return errors.New("no input text has been specified")
	}

	log.Debug("Conversion starting",
		zap.Stringer("family", env.Family),
		zap.Stringer("emphasis", env.Emphasis),
		zap.Bool("ascii", env.ASCII),
		zap.Bool("random", env.Random))
	defer func(start time.Time) {
		log.Debug("Conversion completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	res := convertText(text, pickStyler(env), log)

	log.Info("Conversion summary",
		zap.Int("converted", res.Converted),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))

	if res.Err != nil && res.Converted == 0 {
		return fmt.Errorf("nothing was converted: %w", res.Err)
	}
	return writeOutput(cmd, res.Text)
}

// RunClassify implements the classify command, describing the decoded
// identity of every character of the input one per line.
func RunClassify(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("classify")

	text, err := readInput(cmd)
	if err != nil {
		return err
	}
	if len(text) == 0 {
		return errors.New("no input text has been specified")
	}

	w := bufio.NewWriter(os.Stdout)
	for _, ch := range text {
		if ch == '\n' || ch == '\r' {
			continue
		}
		if _, err := fmt.Fprintln(w, describe(ch)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	log.Debug("Classification completed", zap.Int("characters", len([]rune(text))))
	return nil
}
