package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"storefront_client/config"
	"storefront_client/internal/storefront/business/services"
	"storefront_client/internal/storefront/business/state"
	"storefront_client/internal/storefront/session"
	"storefront_client/metrics"
	"storefront_client/pkg/logger"
	"storefront_client/pkg/middleware"
)

// StorefrontApp wires the whole client together and drives it from a line
// oriented command loop. The loop is the stand-in for the original page
// navigation and stays deliberately dumb: one command at a time, which also
// keeps manager operations from overlapping.
type StorefrontApp struct {
	cfg      config.StoreConfig
	log      *logger.BaseLogger
	writer   io.Writer
	printer  *message.Printer
	identity *services.IdentityClient
	catalog  *state.CatalogManager
	cart     *state.CartManager
	supplier *state.SupplierManager

	page     string
	loggedIn bool
}

func NewStorefrontApp(cfg *config.AppConfig, writer io.Writer) *StorefrontApp {
	_log := logger.NewLogger(writer, "[StorefrontApp]")

	var sessions session.Store
	if cfg.Store.SessionFile != "" {
		sessions = session.NewFileStore(cfg.Store.SessionFile)
	} else {
		sessions = session.NewMemoryStore()
	}

	engine := services.NewRequestEngine(cfg.Store.BaseURL, services.NewSessionAuth(sessions), services.EngineConfig{
		Timeout:           time.Duration(cfg.Store.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.Store.RequestsPerSecond,
		Transport: &middleware.LoggingTransport{
			Log:     _log.WithPrefix("[http]"),
			Metrics: &metrics.ClientMetrics{},
		},
	})

	return &StorefrontApp{
		cfg:      cfg.Store,
		log:      _log,
		writer:   writer,
		printer:  message.NewPrinter(language.BrazilianPortuguese),
		identity: services.NewIdentityClient(engine, sessions),
		catalog:  state.NewCatalogManager(services.NewCatalogClient(engine), _log.WithPrefix("[catalog]")),
		cart:     state.NewCartManager(services.NewCartClient(engine)),
		supplier: state.NewSupplierManager(services.NewSupplierClient(engine), _log.WithPrefix("[fornecedor]")),
		page:     "landing",
	}
}

// Run fetches the catalog once, like the original landing page, then reads
// commands until EOF or "sair".
func (a *StorefrontApp) Run(ctx context.Context, in io.Reader) error {
	a.log.Log("conectado à loja em %s", a.cfg.BaseURL)
	a.catalog.Refresh(ctx)
	a.showLanding()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(a.writer, "[%s] > ", a.page)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "sair" {
			return nil
		}
		a.dispatch(ctx, line)
	}
}

func (a *StorefrontApp) dispatch(ctx context.Context, line string) {
	args := strings.Fields(line)
	switch args[0] {
	case "ajuda":
		a.showHelp()
	case "loja":
		a.page = "landing"
		a.catalog.Refresh(ctx)
		a.showLanding()
	case "add":
		a.addToCart(args[1:])
	case "carrinho":
		a.page = "carrinho"
		a.showCart()
	case "remover":
		if len(args) != 2 {
			fmt.Fprintln(a.writer, "uso: remover <id do item>")
			return
		}
		a.cart.RemoveItem(ctx, a.cfg.DefaultUserID, args[1])
		a.showOutcome(a.cart.Outcome())
		a.showCart()
	case "finalizar":
		a.cart.Checkout(ctx, a.cfg.DefaultUserID)
		a.showOutcome(a.cart.Outcome())
	case "conta":
		if a.loggedIn {
			fmt.Fprintln(a.writer, "Você já está logado.")
			return
		}
		if len(args) != 4 {
			fmt.Fprintln(a.writer, "uso: conta <email> <data_nasc> <senha>")
			return
		}
		a.page = "createAccount"
		if err := a.identity.CreateAccount(ctx, args[1], args[2], args[3]); err != nil {
			fmt.Fprintln(a.writer, "Erro ao criar a conta.")
			return
		}
		fmt.Fprintln(a.writer, "Conta criada com sucesso!")
	case "login":
		if a.loggedIn {
			fmt.Fprintln(a.writer, "Você já está logado.")
			return
		}
		if len(args) != 3 {
			fmt.Fprintln(a.writer, "uso: login <email> <senha>")
			return
		}
		a.page = "login"
		if _, err := a.identity.Login(ctx, args[1], args[2]); err != nil {
			fmt.Fprintln(a.writer, "Erro ao realizar login. Verifique suas credenciais.")
			return
		}
		a.loggedIn = true
		fmt.Fprintln(a.writer, "Login realizado com sucesso!")
	case "logout":
		// Resets the page state only. The stored token stays until the next
		// login overwrites it, matching the observed behavior of the
		// original client.
		a.loggedIn = false
		a.page = "landing"
		fmt.Fprintln(a.writer, "Você saiu com sucesso.")
	case "produto":
		a.page = "produtos"
		a.productCommand(ctx, args[1:])
	case "fornecedor":
		a.page = "fornecedor"
		a.supplierCommand(ctx, args[1:])
	default:
		fmt.Fprintf(a.writer, "comando desconhecido: %s (tente \"ajuda\")\n", args[0])
	}
}

func (a *StorefrontApp) addToCart(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.writer, "uso: add <número do produto>")
		return
	}
	products := a.catalog.Products()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(products) {
		fmt.Fprintln(a.writer, "produto inválido")
		return
	}
	item := a.cart.AddItem(products[n-1])
	fmt.Fprintf(a.writer, "%s adicionado ao carrinho (item %s)\n", item.Name, item.ID)
}

func (a *StorefrontApp) productCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.writer, "uso: produto buscar|salvar|atualizar|deletar|limpar ...")
		return
	}
	switch args[0] {
	case "buscar":
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		a.catalog.Search(ctx, name)
	case "salvar":
		if len(args) != 5 {
			fmt.Fprintln(a.writer, "uso: produto salvar <nome> <descricao> <preco> <estoque>")
			return
		}
		a.catalog.Create(ctx, state.ProductForm{Name: args[1], Description: args[2], Price: args[3], Stock: args[4]})
		a.catalog.Refresh(ctx)
	case "atualizar":
		form := a.catalog.EditBuffer()
		if len(args) == 5 {
			form.Name, form.Description, form.Price, form.Stock = args[1], args[2], args[3], args[4]
		}
		a.catalog.Update(ctx, form)
	case "deletar":
		a.catalog.Delete(ctx, a.catalog.EditBuffer())
	case "limpar":
		a.catalog.Clear()
	default:
		fmt.Fprintf(a.writer, "subcomando desconhecido: produto %s\n", args[0])
		return
	}
	a.showOutcome(a.catalog.Outcome())
	a.showEditBuffer()
}

func (a *StorefrontApp) supplierCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.writer, "uso: fornecedor criar|listar|cnpj ...")
		return
	}
	switch args[0] {
	case "criar":
		if len(args) != 5 {
			fmt.Fprintln(a.writer, "uso: fornecedor criar <nome> <cnpj> <endereco> <produto>")
			return
		}
		a.supplier.Create(ctx, state.SupplierForm{Name: args[1], TaxID: args[2], Address: args[3], SuppliedProduct: args[4]})
		a.showOutcome(a.supplier.Outcome())
	case "listar":
		a.supplier.Refresh(ctx)
	case "cnpj":
		if len(args) != 2 {
			fmt.Fprintln(a.writer, "uso: fornecedor cnpj <cnpj>")
			return
		}
		a.supplier.SearchByTaxID(ctx, args[1])
	default:
		fmt.Fprintf(a.writer, "subcomando desconhecido: fornecedor %s\n", args[0])
		return
	}
	for _, s := range a.supplier.Suppliers() {
		fmt.Fprintf(a.writer, "%s - %s - %s - %s\n", s.Name, s.TaxID, s.Address, s.SuppliedProduct)
	}
}

func (a *StorefrontApp) showLanding() {
	products := a.catalog.Products()
	if len(products) == 0 {
		fmt.Fprintln(a.writer, "Nenhum produto disponível no momento.")
		return
	}
	fmt.Fprintln(a.writer, "Nossos Produtos:")
	for i, p := range products {
		a.printer.Fprintf(a.writer, "%d. %s - %s - R$ %.2f\n", i+1, p.Name, p.Description, p.Price)
	}
}

func (a *StorefrontApp) showCart() {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.writer, "Seu carrinho está vazio")
		return
	}
	for _, item := range items {
		a.printer.Fprintf(a.writer, "%s [%s] R$ %.2f x%d\n", item.Name, item.ID, item.UnitPrice, item.Quantity)
	}
	a.printer.Fprintf(a.writer, "Total do Carrinho (%d itens): R$ %.2f\n", a.cart.Len(), a.cart.Total())
}

func (a *StorefrontApp) showEditBuffer() {
	form := a.catalog.EditBuffer()
	if form == (state.ProductForm{}) {
		return
	}
	fmt.Fprintf(a.writer, "buffer: id=%s nome=%s descricao=%s preco=%s estoque=%s\n",
		form.ID, form.Name, form.Description, form.Price, form.Stock)
}

func (a *StorefrontApp) showOutcome(o state.Outcome) {
	if o.Message == "" {
		return
	}
	fmt.Fprintln(a.writer, o.Message)
}

func (a *StorefrontApp) showHelp() {
	fmt.Fprintln(a.writer, `comandos:
  loja                                      lista o catálogo
  add <n>                                   adiciona o produto n ao carrinho
  carrinho                                  mostra o carrinho e o total
  remover <id>                              remove um item do carrinho
  finalizar                                 finaliza a compra
  conta <email> <data_nasc> <senha>         cria uma conta
  login <email> <senha>                     entra na loja
  logout                                    volta para a página inicial
  produto buscar|salvar|atualizar|deletar|limpar
  fornecedor criar|listar|cnpj
  sair`)
}
