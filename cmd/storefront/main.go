package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/Shalom-platinum/E-commerce/internal/config"
	"github.com/Shalom-platinum/E-commerce/internal/controller"
	"github.com/Shalom-platinum/E-commerce/internal/credential"
	"github.com/Shalom-platinum/E-commerce/internal/gateway"
	"github.com/Shalom-platinum/E-commerce/internal/session"
	"github.com/Shalom-platinum/E-commerce/internal/shell"
	"github.com/Shalom-platinum/E-commerce/internal/transport"
)

func main() {
	var (
		configPath = flag.String("config", "", "Optional YAML config file layered over the environment")
		command    = flag.String("cmd", "browse", "Command: browse|product|cart|orders|login|logout|whoami")
		productID  = flag.Int("product", 0, "Product id for -cmd product")
		username   = flag.String("username", "", "Username for -cmd login")
		password   = flag.String("password", "", "Password for -cmd login")
		timeout    = flag.Duration("timeout", 2*time.Minute, "Overall command deadline")
	)
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	store, err := credential.NewFileStore(cfg.CredentialFile)
	if err != nil {
		log.Fatalf("open credential store: %v", err)
	}

	metrics := transport.NewMetrics(prometheus.NewRegistry())
	api := transport.New(transport.Config{
		BaseURL:     cfg.APIBaseURL,
		Credentials: store,
		Timeout:     cfg.HTTPTimeout,
		Logger:      logger,
		Metrics:     metrics,
	})
	ml := transport.New(transport.Config{
		BaseURL:     cfg.MLBaseURL,
		Credentials: store,
		Timeout:     cfg.HTTPTimeout,
		Logger:      logger,
		Metrics:     metrics,
	})

	catalog := gateway.NewCatalog(api)
	carts := gateway.NewCart(api)
	orders := gateway.NewOrders(api)
	accounts := gateway.NewAccounts(api)
	addresses := gateway.NewAddresses(api)
	recs := gateway.NewRecommendations(ml)
	tracking := gateway.NewTracking(api)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sess := session.NewHolder(accounts, store, logger)
	sess.Init(ctx)

	sh := shell.New(sess, logger)
	cartCtl := controller.NewCart(carts, orders, addresses, sh.BadgeSetter(), logger)

	switch *command {
	case "browse":
		ctl := controller.NewCatalog(catalog, recs, tracking, logger)
		if err := ctl.Load(ctx); err != nil {
			log.Fatalf("load catalog: %v", err)
		}
		for _, p := range ctl.Products() {
			stock := "in stock"
			if !p.InStock() {
				stock = "out of stock"
			}
			fmt.Printf("%4d  %-30s %8s  %s\n", p.ID, p.Name, p.Price, stock)
		}
		if popular := ctl.Popular(); !popular.Empty() {
			names := make([]string, 0, len(popular.Products))
			for _, p := range popular.Products {
				names = append(names, p.Name)
			}
			fmt.Printf("\npopular: %s\n", strings.Join(names, ", "))
		}

	case "product":
		if *productID == 0 {
			log.Fatal("-product is required for -cmd product")
		}
		product, err := catalog.GetProduct(ctx, *productID)
		if err != nil {
			log.Fatalf("get product: %v", err)
		}
		ctl := controller.NewProductDetail(catalog, recs, tracking, carts, logger)
		ctl.Show(ctx, product)
		fmt.Printf("%s  %s\n%s\n", product.Name, product.Price, product.Description)
		for _, r := range ctl.Reviews() {
			fmt.Printf("  [%d/5] %s: %s\n", r.Rating, r.User, r.Comment)
		}

	case "cart":
		requireAuth(sess)
		if err := cartCtl.Load(ctx); err != nil {
			log.Fatalf("load cart: %v", err)
		}
		for _, it := range cartCtl.Cart().Items {
			fmt.Printf("%4d x %-30s %8s\n", it.Quantity, it.Product.Name, it.Subtotal())
		}
		fmt.Printf("total (incl. shipping): %s   badge: %d\n", cartCtl.Total(), sh.Badge())

	case "orders":
		requireAuth(sess)
		ctl := controller.NewOrders(orders, logger)
		if err := ctl.Load(ctx); err != nil {
			log.Fatalf("load orders: %v", err)
		}
		for _, o := range ctl.List() {
			cancellable := ""
			if o.CanCancel() {
				cancellable = "  (cancellable)"
			}
			fmt.Printf("%-12s %-10s %8s%s\n", o.OrderNumber, o.Status, o.TotalAmount, cancellable)
		}

	case "login":
		if *username == "" || *password == "" {
			log.Fatal("-username and -password are required for -cmd login")
		}
		user, err := sess.Login(ctx, *username, *password)
		if err != nil {
			log.Fatalf("login: %v", err)
		}
		fmt.Printf("logged in as %s\n", user.FullName())

	case "logout":
		sess.Logout(ctx)
		fmt.Println("logged out")

	case "whoami":
		if !sess.IsAuthenticated() {
			fmt.Println("not logged in")
			return
		}
		user := sess.CurrentUser()
		role := "customer"
		if user.IsStaff {
			role = "staff"
		}
		fmt.Printf("%s (%s, %s)\n", user.Username, user.Email, role)

	default:
		log.Fatalf("unknown command %q", *command)
	}
}

func requireAuth(sess *session.Holder) {
	if !sess.IsAuthenticated() {
		log.Fatal("login required: run -cmd login first")
	}
}
