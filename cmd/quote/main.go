package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/presets"
	"github.com/angelmondragon/skb-upsell-backend/internal/pricing"
	"github.com/angelmondragon/skb-upsell-backend/internal/quotes"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
)

func main() {
	family := flag.String("family", "IPTV", "TV family: IPTV|CATV")
	preset := flag.String("preset", "", "start from a preset: light_1|light_2|giga_1")
	internet := flag.String("internet", "", "internet plan id")
	tv := flag.String("tv", "", "main TV plan id (tv_none for none)")
	tv2 := flag.String("tv2", "", "second TV plan id")
	stb := flag.String("stb", "", "set-top box id")
	addOns := flag.String("addons", "", "comma separated add-on ids")
	mobile := flag.Bool("mobile", false, "mobile bundle")
	familyPlan := flag.Bool("family-plan", false, "family plan")
	prepaidInternet := flag.Int("prepaid-internet", 0, "internet voucher")
	prepaidTv1 := flag.Int("prepaid-tv1", 0, "main TV voucher")
	prepaidTv2 := flag.Int("prepaid-tv2", 0, "second TV voucher")
	quotedFee := flag.Int("quoted", 0, "fee quoted to the customer (0 for none)")
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logg := logger.New(logger.Options{
		ServiceName: "quote",
		Level:       level,
		Format:      logger.FormatConsole,
		Output:      os.Stderr,
	})
	ctx := context.Background()

	c := catalog.Default()
	fam, err := enums.ParseFamily(*family)
	if err != nil {
		fail(err)
	}
	sel := selection.New(c).SetFamily(c, fam)

	if *preset != "" {
		p, err := enums.ParsePreset(*preset)
		if err != nil {
			fail(err)
		}
		if sel, err = presets.Apply(c, sel, p); err != nil {
			fail(err)
		}
	}
	if *internet != "" {
		sel = sel.SetInternet(*internet)
	}
	if *tv != "" {
		sel = sel.SetTv(*tv)
	}
	if *tv2 != "" {
		sel = sel.SetSecondaryTv(*tv2)
	}
	if *stb != "" {
		sel = sel.SetStb(*stb)
	}
	for _, id := range strings.Split(*addOns, ",") {
		if id = strings.TrimSpace(id); id != "" && !sel.HasAddOn(id) {
			sel = sel.ToggleAddOn(id)
		}
	}
	if *mobile && *familyPlan {
		fail(fmt.Errorf("-mobile and -family-plan cannot be combined"))
	}
	sel = sel.SetMobileBundled(*mobile).SetFamilyPlan(*familyPlan)
	for _, amount := range []int{*prepaidInternet, *prepaidTv1, *prepaidTv2} {
		if !selection.IsPrepaidOption(amount) {
			fail(fmt.Errorf("voucher %d is not a multiple of %d between 0 and %d", amount, catalog.PrepaidStep, catalog.PrepaidMax))
		}
	}
	sel = sel.SetPrepaidInternet(*prepaidInternet).
		SetPrepaidTv1(*prepaidTv1).
		SetPrepaidTv2(*prepaidTv2)

	svc, err := quotes.NewService(pricing.NewEngine(c), nil, logg)
	if err != nil {
		fail(err)
	}
	result := svc.Evaluate(ctx, sel, *quotedFee)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fail(err)
		}
		return
	}
	fmt.Println(result.Report)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "quote: %v\n", err)
	os.Exit(1)
}
