package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/flexprice/prorata/scripts/internal"
	"github.com/joho/godotenv"
)

// Command represents a script that can be run
type Command struct {
	Name        string
	Description string
	Run         func() error
}

var commands = []Command{
	{
		Name:        "quote",
		Description: "Quote a first invoice from a monthly price",
		Run:         internal.Quote,
	},
	{
		Name:        "quote-from-invoice",
		Description: "Derive the monthly price from a first invoice",
		Run:         internal.QuoteFromInvoice,
	},
	{
		Name:        "price-lines",
		Description: "Print the VAT price lines for a base price",
		Run:         internal.PriceLines,
	},
	{
		Name:        "catalog",
		Description: "Print the configured products and add-ons",
		Run:         internal.PrintCatalog,
	},
}

func main() {
	// Define command line flags
	var (
		listCommands bool
		cmdName      string
		productID    string
		monthly      string
		invoice      string
		basePrice    string
		addOnPrice   string
		activation   string
		anchorDay    string
		policy       string
		addOnIDs     string
		language     string
	)

	flag.BoolVar(&listCommands, "list", false, "List all available commands")
	flag.StringVar(&cmdName, "cmd", "", "Command to run")
	flag.StringVar(&productID, "product", "", "Catalog product id")
	flag.StringVar(&monthly, "monthly", "", "Monthly price")
	flag.StringVar(&invoice, "invoice", "", "First invoice amount")
	flag.StringVar(&basePrice, "base", "", "Tax-exclusive base price for price lines")
	flag.StringVar(&addOnPrice, "addon-price", "", "Add-on amount added to every price line")
	flag.StringVar(&activation, "activation", "", "Activation date (YYYY-MM-DD)")
	flag.StringVar(&anchorDay, "anchor", "", "Billing anchor day (1-31)")
	flag.StringVar(&policy, "policy", "", "Proration policy (ratio, anchor_tax, flat_thirty)")
	flag.StringVar(&addOnIDs, "addons", "", "Comma separated catalog add-on ids")
	flag.StringVar(&language, "lang", "", "Explanation language (en or ar)")

	flag.Parse()

	if listCommands {
		fmt.Println("Available commands:")
		for _, cmd := range commands {
			fmt.Printf("  %-20s %s\n", cmd.Name, cmd.Description)
		}
		return
	}

	if cmdName == "" {
		log.Fatal("Please specify a command to run using -cmd flag. Use -list to see available commands.")
	}

	// Values from a local .env are overridden by flags below
	_ = godotenv.Load()

	// Set command-specific environment variables
	for env, value := range map[string]string{
		"PRODUCT_ID":      productID,
		"MONTHLY_PRICE":   monthly,
		"INVOICE_AMOUNT":  invoice,
		"BASE_PRICE":      basePrice,
		"ADDON_PRICE":     addOnPrice,
		"ACTIVATION_DATE": activation,
		"ANCHOR_DAY":      anchorDay,
		"POLICY":          policy,
		"ADDON_IDS":       addOnIDs,
		"LANGUAGE":        language,
	} {
		if value != "" {
			os.Setenv(env, value)
		}
	}

	// Find and run the command
	for _, cmd := range commands {
		if cmd.Name == cmdName {
			if err := cmd.Run(); err != nil {
				log.Fatalf("Error running command %s: %v", cmdName, err)
			}
			return
		}
	}

	log.Fatalf("Unknown command: %s. Use -list to see available commands.", cmdName)
}
