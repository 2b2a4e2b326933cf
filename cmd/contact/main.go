// Command contact fills in and submits the contact form against a running
// API, printing the banner and any per-field errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"krushi/internal/adapters/apiclient"
	"krushi/internal/application/contactform"
	"krushi/internal/config"
	"krushi/internal/domain/contact"
	"krushi/internal/domain/translation"
	"krushi/internal/infrastructure/i18n"
	"krushi/internal/infrastructure/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger := logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, Colored: true})

	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	var values contact.Fields
	fs.StringVar(&values.Name, contact.FieldName, "", "your name")
	fs.StringVar(&values.Email, contact.FieldEmail, "", "email address")
	fs.StringVar(&values.Phone, contact.FieldPhone, "", "phone number (optional)")
	fs.StringVar(&values.Subject, contact.FieldSubject, "", "subject")
	fs.StringVar(&values.Message, contact.FieldMessage, "", "message")
	lang := fs.String("lang", cfg.DefaultLanguage, "display language (en or mr)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if values.IsZero() {
		fs.SetOutput(out)
		fmt.Fprintln(out, "usage: contact -name NAME -email EMAIL -subject SUBJECT -message MESSAGE [-phone PHONE] [-lang en|mr]")
		fs.PrintDefaults()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := apiclient.New(cfg.APIURL, cfg.Timeout, *lang)
	table := loadTable(ctx, client, *lang, cfg.DefaultLanguage, logger)

	form := contactform.New(client, contactform.WithTranslator(table, *lang))
	for _, name := range contact.FieldNames {
		v, _ := values.Get(name)
		form.UpdateField(name, v)
	}

	outcome := form.Submit(ctx)
	printOutcome(out, table, *lang, outcome)
	if outcome.Status != contactform.Success {
		return 1
	}
	return 0
}

// loadTable prefers the catalog served by the API and falls back to the one
// compiled into the binary.
func loadTable(ctx context.Context, client *apiclient.Client, lang, fallback string, logger *slog.Logger) *translation.Table {
	trees := map[string]map[string]any{}
	for _, l := range []string{fallback, lang} {
		if _, ok := trees[l]; ok {
			continue
		}
		cat, err := client.Translations(ctx, l)
		if err != nil {
			logger.Debug("remote catalog unavailable", "language", l, "error", err)
			break
		}
		trees[l] = cat.Translations
	}
	if len(trees) > 0 {
		if table, err := translation.NewTable(trees, fallback); err == nil && table.Has(lang) {
			return table
		}
	}
	table, err := i18n.LoadCatalog(fallback)
	if err != nil {
		logger.Warn("embedded catalog unavailable", "error", err)
		return translation.MustNewTable(nil, fallback)
	}
	return table
}

func printOutcome(w io.Writer, table *translation.Table, lang string, o contactform.Outcome) {
	if o.Err != nil {
		fmt.Fprintln(w, o.Err)
		return
	}
	icon := "✅"
	if o.Status != contactform.Success {
		icon = "❌"
	}
	fmt.Fprintf(w, "%s %s\n", icon, o.Message)
	for _, name := range contact.FieldNames {
		msg, ok := o.Errors[name]
		if !ok {
			continue
		}
		label := strings.TrimSuffix(table.Resolve(lang, "contact.form."+name), " *")
		fmt.Fprintf(w, "  • %s: %s\n", label, msg)
	}
}
