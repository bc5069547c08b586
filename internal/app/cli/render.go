package cli

import (
	"fmt"

	"gastos/internal/domain/expense"
	"gastos/internal/utils/normalize"
)

// renderList prints one formatted line per record.
func (a *App) renderList(list []expense.Expense) {
	a.ui.Println("\n=== LISTA DE GASTOS ===")

	if len(list) == 0 {
		a.ui.Println("Nenhum gasto registrado.")
		return
	}
	for i, e := range list {
		a.ui.Println(e.Format(i + 1))
	}
}

// renderSummary prints count, totals, per-category totals and the top
// categories for whatever subset the caller selected.
func (a *App) renderSummary(list []expense.Expense, title string) {
	a.ui.Printf("\n=== %s ===\n", title)

	if len(list) == 0 {
		a.ui.Println("Nenhum gasto encontrado.")
		return
	}

	s := expense.Summarize(list)
	a.ui.Printf("\nQuantidade de gastos: %d\n", s.Count)
	a.ui.Printf("Total geral: R$ %.2f\n", s.Total)
	a.ui.Printf("Média por gasto: R$ %.2f\n", s.Average)

	a.ui.Println("\nTotal por categoria:")
	for _, ct := range s.ByCategory {
		a.ui.Printf("- %s: R$ %.2f\n", ct.Categoria, ct.Total)
	}

	a.ui.Println("\nTop 3 categorias:")
	for i, ct := range s.Top {
		a.ui.Printf("%d) %s: R$ %.2f\n", i+1, ct.Categoria, ct.Total)
	}
}

// listMenu is the listing / filter / sort submenu.
func (a *App) listMenu(sess *session) error {
	for {
		a.ui.Clear()
		a.ui.Println("=== LISTAGEM / FILTROS / ORDENAR ===")
		a.ui.Println()
		a.ui.Println("1 - Listar tudo")
		a.ui.Println("2 - Listar por mês (YYYY-MM)")
		a.ui.Println("3 - Listar por intervalo de datas (YYYY-MM-DD)")
		a.ui.Println("4 - Ordenar (data/valor/categoria/descricao)")
		a.ui.Println("0 - Voltar")

		op, err := a.ui.ReadLine("\n> ")
		if err != nil {
			return err
		}

		switch op {
		case "1":
			a.ui.Clear()
			a.renderList(sess.list)
			a.ui.Pause()
		case "2":
			mes, err := a.ui.ReadLine("\nMês (YYYY-MM): ")
			if err != nil {
				return err
			}
			a.ui.Clear()
			a.renderList(expense.FilterByMonth(sess.list, mes))
			a.ui.Pause()
		case "3":
			filtered, _, _, err := a.promptRange(sess.list)
			if err != nil {
				return err
			}
			if filtered != nil {
				a.ui.Clear()
				a.renderList(filtered)
			}
			a.ui.Pause()
		case "4":
			if err := a.sortFlow(sess); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			a.ui.Println("\nOpção inválida.")
			a.ui.Pause()
		}
	}
}

func (a *App) sortFlow(sess *session) error {
	raw, err := a.ui.ReadLine("\nOrdenar por (data/valor/categoria/descricao): ")
	if err != nil {
		return err
	}
	key, keyErr := expense.ParseSortKey(raw)
	if keyErr != nil {
		a.ui.Println("Chave inválida.")
		a.ui.Pause()
		return nil
	}

	direction, err := a.ui.ReadLine("Ordem (cresc/desc): ")
	if err != nil {
		return err
	}
	descending := normalize.Fold(direction) == "desc"

	sorted, sortErr := expense.Sort(sess.list, key, descending)
	if sortErr != nil {
		a.ui.Println("Chave inválida.")
		a.ui.Pause()
		return nil
	}

	a.ui.Clear()
	a.renderList(sorted)
	a.ui.Pause()
	return nil
}

// searchMenu searches the description and/or the category; every search is
// followed by a summary of the matches.
func (a *App) searchMenu(sess *session) error {
	for {
		a.ui.Clear()
		a.ui.Println("=== BUSCA ===")
		a.ui.Println()
		a.ui.Println("1 - Buscar por palavra na descrição")
		a.ui.Println("2 - Buscar por categoria")
		a.ui.Println("3 - Buscar por palavra + categoria")
		a.ui.Println("0 - Voltar")

		op, err := a.ui.ReadLine("\n> ")
		if err != nil {
			return err
		}

		var term, categoria string
		switch op {
		case "1":
			if term, err = a.ui.ReadLine("\nPalavra (descrição): "); err != nil {
				return err
			}
		case "2":
			if categoria, err = a.ui.ReadLine("\nCategoria: "); err != nil {
				return err
			}
		case "3":
			if term, err = a.ui.ReadLine("\nPalavra (descrição): "); err != nil {
				return err
			}
			if categoria, err = a.ui.ReadLine("Categoria: "); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			a.ui.Println("\nOpção inválida.")
			a.ui.Pause()
			continue
		}

		found := expense.Search(sess.list, term, categoria)
		a.ui.Clear()
		a.renderList(found)
		a.renderSummary(found, "Resumo da busca")
		a.ui.Pause()
	}
}

// summaryMenu shows totals for everything, one month or a date range.
func (a *App) summaryMenu(sess *session) error {
	for {
		a.ui.Clear()
		a.ui.Println("=== RESUMOS ===")
		a.ui.Println()
		a.ui.Println("1 - Resumo geral")
		a.ui.Println("2 - Resumo por mês (YYYY-MM)")
		a.ui.Println("3 - Resumo por intervalo de datas (YYYY-MM-DD)")
		a.ui.Println("0 - Voltar")

		op, err := a.ui.ReadLine("\n> ")
		if err != nil {
			return err
		}

		switch op {
		case "1":
			a.ui.Clear()
			a.renderSummary(sess.list, "Resumo geral")
			a.ui.Pause()
		case "2":
			mes, err := a.ui.ReadLine("\nMês (YYYY-MM): ")
			if err != nil {
				return err
			}
			a.ui.Clear()
			a.renderSummary(expense.FilterByMonth(sess.list, mes), fmt.Sprintf("Resumo do mês %s", mes))
			a.ui.Pause()
		case "3":
			filtered, start, end, err := a.promptRange(sess.list)
			if err != nil {
				return err
			}
			if filtered != nil {
				a.ui.Clear()
				a.renderSummary(filtered, fmt.Sprintf("Resumo %s até %s", start, end))
			}
			a.ui.Pause()
		case "0":
			return nil
		default:
			a.ui.Println("\nOpção inválida.")
			a.ui.Pause()
		}
	}
}
