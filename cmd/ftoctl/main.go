// ftoctl drives a session cart and places orders from the terminal, the
// programmatic stand-in for the storefront page. The cart lives in Redis
// under a single per-session key, so it survives between invocations like
// the browser's stored cart does.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/alfat81/fto/internal/cart"
	"github.com/alfat81/fto/internal/config"
	"github.com/alfat81/fto/internal/order"
	"github.com/alfat81/fto/pkg/client"
	"github.com/alfat81/fto/pkg/logger"
	"github.com/alfat81/fto/pkg/redis"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: ftoctl [flags] <command>

Commands:
  add     -id <id> -name <name> -price <rub> [-image <url>]
  remove  -id <id>
  qty     -id <id> -delta <n>
  list
  clear
  submit  -name <name> -phone <phone> [-comment <text>]

Flags:
  -session  cart session id (default "default")
  -server   relay server base URL (default "http://localhost:10000")
`)
}

func run() error {
	_ = godotenv.Load()

	session := flag.String("session", "default", "cart session id")
	serverURL := flag.String("server", "http://localhost:10000", "relay server base URL")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		return fmt.Errorf("no command given")
	}

	zapLogger, err := logger.New(false)
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	redisClient := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	defer redisClient.Close()
	if err := redisClient.WaitReady(ctx, zapLogger); err != nil {
		return err
	}

	manager, err := cart.NewManager(ctx, cart.NewRedisStore(redisClient), *session, zapLogger)
	if err != nil {
		return err
	}

	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	switch cmd {
	case "add":
		return cmdAdd(ctx, manager, args)
	case "remove":
		return cmdRemove(ctx, manager, args)
	case "qty":
		return cmdQuantity(ctx, manager, args)
	case "list":
		return cmdList(manager)
	case "clear":
		return manager.Clear(ctx)
	case "submit":
		return cmdSubmit(ctx, manager, *serverURL, zapLogger, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdAdd(ctx context.Context, m *cart.Manager, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	id := fs.String("id", "", "product id")
	name := fs.String("name", "", "product name")
	price := fs.Int64("price", 0, "price in rubles")
	image := fs.String("image", "", "image URL")
	fs.Parse(args)

	if *id == "" || *name == "" {
		return fmt.Errorf("add: -id and -name are required")
	}

	if err := m.AddItem(ctx, order.CartItem{
		ID:    *id,
		Name:  *name,
		Price: *price,
		Image: *image,
	}); err != nil {
		return err
	}
	return cmdList(m)
}

func cmdRemove(ctx context.Context, m *cart.Manager, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	id := fs.String("id", "", "product id")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("remove: -id is required")
	}
	if err := m.RemoveItem(ctx, *id); err != nil {
		return err
	}
	return cmdList(m)
}

func cmdQuantity(ctx context.Context, m *cart.Manager, args []string) error {
	fs := flag.NewFlagSet("qty", flag.ExitOnError)
	id := fs.String("id", "", "product id")
	delta := fs.Int("delta", 0, "quantity change")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("qty: -id is required")
	}
	if err := m.ChangeQuantity(ctx, *id, *delta); err != nil {
		return err
	}
	return cmdList(m)
}

func cmdList(m *cart.Manager) error {
	items := m.Items()
	if len(items) == 0 {
		fmt.Println("Корзина пуста")
		return nil
	}
	for _, it := range items {
		fmt.Printf("%-12s %-30s %s × %d\n", it.ID, it.Name, order.FormatAmount(it.Price), it.Qty())
	}
	fmt.Printf("Итого: %s\n", order.FormatAmount(m.Total()))
	return nil
}

func cmdSubmit(ctx context.Context, m *cart.Manager, serverURL string, zapLogger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	name := fs.String("name", "", "customer name")
	phone := fs.String("phone", "", "customer phone")
	comment := fs.String("comment", "", "order comment")
	fs.Parse(args)

	result, err := client.New(serverURL, zapLogger).Submit(ctx, m, order.Customer{
		Name:    *name,
		Phone:   *phone,
		Comment: *comment,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s\nНомер заказа: %s\n", result.Message, result.OrderID)
	return nil
}
