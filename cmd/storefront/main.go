package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"boutique-storefront/internal/api"
	"boutique-storefront/internal/auth"
	"boutique-storefront/internal/catalog"
	"boutique-storefront/internal/config"
	"boutique-storefront/internal/format"
	"boutique-storefront/internal/models"
	"boutique-storefront/internal/store"
)

type app struct {
	client    *api.Client
	session   *auth.Session
	cart      *store.CartStore
	favorites *store.FavoritesStore
	reader    *bufio.Reader

	// Current browse state: the fetched catalog, the active filter and how
	// many results are visible ("show more" pagination).
	products []models.Product
	filter   catalog.Filter
	visible  int
}

func main() {
	cfg := config.Load()

	storage, err := store.NewFileStorage(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to open data directory:", err)
	}

	session := auth.NewSession(storage)
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, session, func() {
		_ = session.SignOut()
		fmt.Println("Session expirée, veuillez vous reconnecter.")
	})

	a := &app{
		client:    client,
		session:   session,
		cart:      store.NewCartStore(storage, toast),
		favorites: store.NewFavoritesStore(storage),
		reader:    bufio.NewReader(os.Stdin),
		filter:    catalog.NewFilter(catalog.CategoryAll),
		visible:   catalog.DefaultPageSize,
	}

	fmt.Println("Boutique Storefront")
	fmt.Println("===================")
	fmt.Println("Tapez 'help' pour la liste des commandes.")
	a.run()
}

func toast(message string) {
	fmt.Println("✓ " + message)
}

func (a *app) run() {
	for {
		fmt.Print("> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "browse":
			a.browse(args)
		case "search":
			a.filter.Search = strings.Join(args, " ")
			a.visible = catalog.DefaultPageSize
			a.render()
		case "sort":
			if len(args) != 1 {
				fmt.Println("usage: sort name-asc|name-desc|price-asc|price-desc")
				continue
			}
			a.filter.Sort = args[0]
			a.render()
		case "filter":
			a.applyFilterArgs(args)
		case "facets":
			a.printFacets()
		case "more":
			a.visible += catalog.DefaultPageSize
			a.render()
		case "add":
			a.addToCart(args)
		case "cart":
			a.printCart()
		case "qty":
			a.updateQuantity(args)
		case "remove":
			a.removeFromCart(args)
		case "clear":
			if err := a.cart.ClearCart(); err != nil {
				fmt.Println("Erreur :", err)
			}
		case "fav":
			a.toggleFavorite(args)
		case "favs":
			a.printFavorites()
		case "checkout":
			a.checkout()
		case "login":
			a.login()
		case "logout":
			if err := a.session.SignOut(); err != nil {
				fmt.Println("Erreur :", err)
			}
		case "whoami":
			a.whoami()
		case "quit", "exit":
			return
		default:
			fmt.Printf("Commande inconnue : %s (tapez 'help')\n", cmd)
		}
	}
}

func (a *app) printHelp() {
	fmt.Println(`Commandes :
  browse [all|collections|nouveautes|meilleures-ventes|<categorie>]
  search <terme>          recherche dans le nom, la description et les couleurs
  filter color=Noir,Blanc size=M,L price=20-150   (sans argument : réinitialise)
  sort name-asc|name-desc|price-asc|price-desc
  facets                  couleurs et tailles disponibles dans la vue courante
  more                    afficher la page suivante
  add <n>                 ajouter le produit n au panier
  cart | qty <n> <q> | remove <n> | clear
  fav <n> | favs
  checkout                passer la commande
  login | logout | whoami
  quit`)
}

func (a *app) browse(args []string) {
	category := catalog.CategoryAll
	if len(args) > 0 {
		category = args[0]
	}
	a.filter = catalog.NewFilter(category)
	a.visible = catalog.DefaultPageSize

	// The whole catalog is fetched once; category, search and facet
	// filtering all happen locally on this list.
	products, err := a.client.Products(context.Background(), nil)
	if err != nil {
		fmt.Println("Impossible de charger les produits :", err)
		return
	}
	a.products = products
	a.filter.MaxPrice = catalog.PriceBounds(products)
	a.filter.MinPrice = 0
	a.render()
}

func (a *app) applyFilterArgs(args []string) {
	if len(args) == 0 {
		category := a.filter.Category
		a.filter = catalog.NewFilter(category)
		a.filter.MaxPrice = catalog.PriceBounds(a.products)
		a.render()
		return
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Println("usage: filter color=... size=... price=min-max")
			return
		}
		switch key {
		case "color", "colors":
			a.filter.Colors = strings.Split(value, ",")
		case "size", "sizes":
			a.filter.Sizes = strings.Split(value, ",")
		case "price":
			parts := strings.SplitN(value, "-", 2)
			if len(parts) != 2 {
				fmt.Println("usage: filter price=min-max")
				return
			}
			min, err1 := strconv.ParseFloat(parts[0], 64)
			max, err2 := strconv.ParseFloat(parts[1], 64)
			if err1 != nil || err2 != nil || max < min {
				fmt.Println("Fourchette de prix invalide")
				return
			}
			a.filter.MinPrice = min
			a.filter.MaxPrice = max
		default:
			fmt.Printf("Filtre inconnu : %s\n", key)
			return
		}
	}
	a.visible = catalog.DefaultPageSize
	a.render()
}

// view returns the current filtered and sorted result set.
func (a *app) view() []models.Product {
	return catalog.Apply(a.products, a.filter)
}

func (a *app) render() {
	results := a.view()
	if len(results) == 0 {
		fmt.Println(catalog.EmptyStateMessage(a.filter.Category))
		return
	}

	page := catalog.Paginate(results, a.visible)
	fmt.Printf("%d produit(s)\n", len(results))
	for i, p := range page {
		marker := " "
		if a.favorites.IsFavorite(p.ID) {
			marker = "♥"
		}
		fmt.Printf("%3d. %s %-30s %12s  [%s] (%s)\n",
			i+1, marker, p.Name, format.Price(p.Price),
			strings.Join(p.Sizes, ","), strings.Join(p.Colors, ","))
	}
	if a.visible < len(results) {
		fmt.Printf("... %d de plus ('more' pour continuer)\n", len(results)-a.visible)
	}
}

func (a *app) printFacets() {
	facets := catalog.FacetsFor(a.products, a.filter)
	fmt.Println("Couleurs :", strings.Join(facets.Colors, ", "))
	fmt.Println("Tailles  :", strings.Join(facets.Sizes, ", "))
}

// pick resolves a 1-based index from the currently visible page.
func (a *app) pick(args []string) (models.Product, bool) {
	if len(args) == 0 {
		fmt.Println("Précisez le numéro du produit")
		return models.Product{}, false
	}
	n, err := strconv.Atoi(args[0])
	page := catalog.Paginate(a.view(), a.visible)
	if err != nil || n < 1 || n > len(page) {
		fmt.Println("Numéro de produit invalide")
		return models.Product{}, false
	}
	return page[n-1], true
}

func (a *app) addToCart(args []string) {
	product, ok := a.pick(args)
	if !ok {
		return
	}

	size := a.prompt(fmt.Sprintf("Taille %v : ", product.Sizes))
	color := a.prompt(fmt.Sprintf("Couleur %v : ", product.Colors))
	qtyRaw := a.prompt("Quantité [1] : ")
	qty := 1
	if qtyRaw != "" {
		parsed, err := strconv.Atoi(qtyRaw)
		if err != nil {
			fmt.Println("Quantité invalide")
			return
		}
		qty = parsed
	}

	if err := a.cart.AddToCart(product, size, color, qty); err != nil {
		if errors.Is(err, store.ErrInvalidQuantity) {
			fmt.Println("La quantité doit être positive")
			return
		}
		fmt.Println("Erreur :", err)
	}
}

func (a *app) printCart() {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Votre panier est vide")
		return
	}
	for i, item := range items {
		fmt.Printf("%3d. %-30s %s / %s  x%d  %s\n",
			i+1, item.Product.Name, item.Size, item.Color, item.Quantity,
			format.Price(item.LineTotal()))
	}
	fmt.Printf("Total : %d article(s), %s\n", a.cart.TotalItems(), format.Price(a.cart.TotalPrice()))
}

func (a *app) cartItemID(indexArg string) (string, bool) {
	n, err := strconv.Atoi(indexArg)
	items := a.cart.Items()
	if err != nil || n < 1 || n > len(items) {
		fmt.Println("Numéro d'article invalide")
		return "", false
	}
	return items[n-1].ID, true
}

func (a *app) updateQuantity(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: qty <n> <quantité>")
		return
	}
	id, ok := a.cartItemID(args[0])
	if !ok {
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("Quantité invalide")
		return
	}
	if err := a.cart.UpdateQuantity(id, qty); err != nil {
		fmt.Println("Erreur :", err)
	}
}

func (a *app) removeFromCart(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: remove <n>")
		return
	}
	id, ok := a.cartItemID(args[0])
	if !ok {
		return
	}
	if err := a.cart.RemoveFromCart(id); err != nil {
		fmt.Println("Erreur :", err)
	}
}

func (a *app) toggleFavorite(args []string) {
	product, ok := a.pick(args)
	if !ok {
		return
	}
	if a.favorites.IsFavorite(product.ID) {
		if err := a.favorites.Remove(product.ID); err != nil {
			fmt.Println("Erreur :", err)
			return
		}
		fmt.Printf("Retiré des favoris : %s\n", product.Name)
		return
	}
	if err := a.favorites.Add(product); err != nil {
		fmt.Println("Erreur :", err)
		return
	}
	fmt.Printf("Ajouté aux favoris : %s\n", product.Name)
}

func (a *app) printFavorites() {
	favorites := a.favorites.Products()
	if len(favorites) == 0 {
		fmt.Println("Aucun favori")
		return
	}
	for i, p := range favorites {
		fmt.Printf("%3d. %-30s %s\n", i+1, p.Name, format.Price(p.Price))
	}
}

func (a *app) checkout() {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Votre panier est vide")
		return
	}

	fullName := a.prompt("Nom complet : ")
	email := a.prompt("Email : ")
	address := a.prompt("Adresse : ")
	city := a.prompt("Ville : ")
	postalCode := a.prompt("Code postal : ")
	phone := a.prompt("Téléphone : ")

	// Validation happens before any network dispatch.
	req, err := checkoutRequest(fullName, email, address, city, postalCode, phone, items)
	if err != nil {
		fmt.Println("Tous les champs sont obligatoires")
		return
	}

	order, err := a.client.CreateOrder(context.Background(), req)
	if err != nil {
		// The cart is untouched so the user can retry.
		fmt.Println("Une erreur est survenue lors de la commande. Veuillez réessayer.")
		fmt.Println("Détail :", err)
		return
	}

	if err := a.cart.ClearCart(); err != nil {
		fmt.Println("Erreur :", err)
	}
	fmt.Printf("Commande %s enregistrée. Total : %s\n", order.ID, format.Price(order.TotalAmount))
}

// checkoutRequest assembles the order payload from the checkout form. Every
// field is required so the shipping address never comes out partially filled.
func checkoutRequest(fullName, email, address, city, postalCode, phone string, items []models.CartItem) (models.OrderRequest, error) {
	for _, field := range []string{fullName, email, address, city, postalCode, phone} {
		if strings.TrimSpace(field) == "" {
			return models.OrderRequest{}, errors.New("missing required field")
		}
	}

	req := models.OrderRequest{
		UserEmail:       email,
		UserFullName:    fullName,
		ShippingAddress: fmt.Sprintf("%s, %s %s", address, city, postalCode),
		Phone:           phone,
	}
	for _, item := range items {
		req.Items = append(req.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}
	return req, nil
}

func (a *app) login() {
	email := a.prompt("Email : ")
	fmt.Print("Mot de passe : ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Erreur :", err)
		return
	}

	resp, err := a.client.Login(context.Background(), email, string(passwordBytes))
	if err != nil {
		fmt.Println("Connexion impossible :", err)
		return
	}
	if err := a.session.SignIn(resp); err != nil {
		fmt.Println("Erreur :", err)
		return
	}
	fmt.Printf("Bienvenue, %s\n", resp.User.FullName)
}

func (a *app) whoami() {
	user, err := a.session.User()
	if err != nil || !a.session.Valid() {
		fmt.Println("Non connecté")
		return
	}
	fmt.Printf("%s <%s> (%s)\n", user.FullName, user.Email, user.Role)
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
