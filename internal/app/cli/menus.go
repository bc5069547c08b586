package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"gastos/internal/domain/expense"
	"gastos/internal/export"
	"gastos/internal/utils/normalize"
)

// mainMenu loops until the user quits with "sair" (or the No branch of the
// return prompt). The collection is saved before leaving.
func (a *App) mainMenu(ctx context.Context, sess *session) error {
	for {
		a.ui.Clear()
		a.ui.Banner(fmt.Sprintf("%s   [%s]", appTitle, sess.login))

		a.ui.Println("\n1 - Adicionar gasto")
		a.ui.Println("2 - Editar gasto")
		a.ui.Println("3 - Remover gasto")
		a.ui.Println("\n4 - Listagem / Filtros / Ordenar")
		a.ui.Println("5 - Busca")
		a.ui.Println("6 - Resumos")
		a.ui.Println("7 - Exportar CSV")
		a.ui.Println("8 - Dados (Salvar / Carregar / Limpar)")
		a.ui.Println("\nDigite 'sair' para encerrar")

		op, err := a.ui.ReadLine("\n> ")
		if err != nil {
			return err
		}

		switch normalize.Fold(op) {
		case "1":
			if err := a.addFlow(ctx, sess); err != nil {
				return err
			}
			stay, err := a.confirmReturn(ctx, sess)
			if err != nil || !stay {
				return err
			}
		case "2":
			if err := a.editFlow(ctx, sess); err != nil {
				return err
			}
			a.ui.Pause()
			stay, err := a.confirmReturn(ctx, sess)
			if err != nil || !stay {
				return err
			}
		case "3":
			if err := a.removeFlow(ctx, sess); err != nil {
				return err
			}
			a.ui.Pause()
			stay, err := a.confirmReturn(ctx, sess)
			if err != nil || !stay {
				return err
			}
		case "4":
			if err := a.listMenu(sess); err != nil {
				return err
			}
		case "5":
			if err := a.searchMenu(sess); err != nil {
				return err
			}
		case "6":
			if err := a.summaryMenu(sess); err != nil {
				return err
			}
		case "7":
			if err := a.exportMenu(sess); err != nil {
				return err
			}
		case "8":
			if err := a.dataMenu(ctx, sess); err != nil {
				return err
			}
		case "sair":
			if err := a.expenses.Save(ctx, sess.login, sess.list); err != nil {
				return err
			}
			a.ui.Println("\nEncerrando...")
			return nil
		default:
			a.ui.Println("\nOpção inválida.")
			a.ui.Pause()
		}
	}
}

// confirmReturn asks "back to the menu?". Answering no saves and ends the
// session; the answer is folded so "não", "nao" and "n" all count.
func (a *App) confirmReturn(ctx context.Context, sess *session) (bool, error) {
	for {
		resp, err := a.ui.ReadLine("\nVoltar ao menu? (Sim/Não): ")
		if err != nil {
			return false, err
		}
		switch normalize.Fold(resp) {
		case "s", "sim", "y", "yes":
			return true, nil
		case "n", "nao", "no":
			if err := a.expenses.Save(ctx, sess.login, sess.list); err != nil {
				return false, err
			}
			a.ui.Println("\nEncerrando...")
			return false, nil
		}
		a.ui.Println("Responda com Sim ou Não.")
	}
}

func (a *App) addFlow(ctx context.Context, sess *session) error {
	a.ui.Clear()
	a.ui.Println("=== ADICIONAR GASTO ===")
	a.ui.Println()

	descricao, err := a.ui.ReadLine("Descrição: ")
	if err != nil {
		return err
	}
	categoria, err := a.ui.ReadLine("Categoria: ")
	if err != nil {
		return err
	}
	valor, err := a.ui.promptValor("Valor (R$): ")
	if err != nil {
		return err
	}
	data, err := a.ui.promptOptionalDate()
	if err != nil {
		return err
	}

	e, err := expense.New(descricao, categoria, valor, data)
	if err != nil {
		a.ui.Errorf("\nGasto inválido: %v", err)
		return nil
	}

	list, err := a.expenses.Add(ctx, sess.login, sess.list, e)
	if err != nil {
		a.ui.Errorf("\nErro ao salvar: %v", err)
		return nil
	}
	sess.list = list

	a.ui.Successf("\n✅ Gasto registrado com sucesso!")
	a.ui.Println(e.Format(len(sess.list)))
	return nil
}

func (a *App) editFlow(ctx context.Context, sess *session) error {
	a.ui.Clear()
	a.ui.Println("=== EDITAR GASTO ===")

	if len(sess.list) == 0 {
		a.ui.Println("\nNenhum gasto para editar.")
		return nil
	}
	a.renderList(sess.list)

	idx, err := a.ui.promptIndex(len(sess.list))
	if err != nil {
		return err
	}
	if idx < 0 {
		a.ui.Println("\nEdição cancelada.")
		return nil
	}

	a.ui.Println("\nGasto selecionado:")
	a.ui.Println(sess.list[idx].Format(idx + 1))

	a.ui.Println("\nO que deseja editar?")
	a.ui.Println("1 - Descrição")
	a.ui.Println("2 - Categoria")
	a.ui.Println("3 - Valor")
	a.ui.Println("4 - Data")
	a.ui.Println("0 - Cancelar")

	op, err := a.ui.ReadLine("\n> ")
	if err != nil {
		return err
	}

	var (
		field expense.Field
		value string
	)
	switch op {
	case "1":
		field = expense.FieldDescricao
		if value, err = a.ui.ReadLine("Nova descrição: "); err != nil {
			return err
		}
	case "2":
		field = expense.FieldCategoria
		if value, err = a.ui.ReadLine("Nova categoria: "); err != nil {
			return err
		}
	case "3":
		field = expense.FieldValor
		valor, err := a.ui.promptValor("Novo valor (R$): ")
		if err != nil {
			return err
		}
		value = fmt.Sprintf("%v", valor)
	case "4":
		field = expense.FieldData
		data, err := a.ui.promptOptionalDate()
		if err != nil {
			return err
		}
		if data != nil {
			value = *data
		}
	case "0":
		a.ui.Println("\nEdição cancelada.")
		return nil
	default:
		a.ui.Println("\nOpção inválida.")
		return nil
	}

	list, err := a.expenses.EditField(ctx, sess.login, sess.list, idx, field, value)
	if err != nil {
		a.ui.Errorf("\nErro ao editar: %v", err)
		return nil
	}
	sess.list = list

	a.ui.Successf("\n✅ Gasto atualizado:")
	a.ui.Println(sess.list[idx].Format(idx + 1))
	return nil
}

func (a *App) removeFlow(ctx context.Context, sess *session) error {
	a.ui.Clear()
	a.ui.Println("=== REMOVER GASTO ===")

	if len(sess.list) == 0 {
		a.ui.Println("\nNenhum gasto para remover.")
		return nil
	}
	a.renderList(sess.list)

	idx, err := a.ui.promptIndex(len(sess.list))
	if err != nil {
		return err
	}
	if idx < 0 {
		a.ui.Println("\nRemoção cancelada.")
		return nil
	}

	list, removed, err := a.expenses.Remove(ctx, sess.login, sess.list, idx)
	if err != nil {
		a.ui.Errorf("\nErro ao remover: %v", err)
		return nil
	}
	sess.list = list

	a.ui.Successf("\n✅ Gasto removido:")
	a.ui.Printf("Data: %s | Descrição: %s | Categoria: %s | Valor: R$ %.2f\n",
		removed.DataOrPlaceholder(), removed.Descricao, removed.Categoria, removed.Valor)
	return nil
}

// dataMenu is the save / reload / clear submenu.
func (a *App) dataMenu(ctx context.Context, sess *session) error {
	for {
		a.ui.Clear()
		a.ui.Println("=== DADOS (Salvar / Carregar / Limpar) ===")
		a.ui.Println()
		a.ui.Println("1 - Salvar agora")
		a.ui.Println("2 - Recarregar do arquivo")
		a.ui.Println("3 - Limpar todos os dados")
		a.ui.Println("0 - Voltar")

		op, err := a.ui.ReadLine("\n> ")
		if err != nil {
			return err
		}

		switch op {
		case "1":
			if err := a.expenses.Save(ctx, sess.login, sess.list); err != nil {
				a.ui.Errorf("\nErro ao salvar: %v", err)
			} else {
				a.ui.Successf("\n✅ Dados salvos.")
			}
			a.ui.Pause()
		case "2":
			list, err := a.expenses.Load(ctx, sess.login)
			if err != nil {
				a.ui.Errorf("\nErro ao carregar: %v", err)
			} else {
				sess.list = list
				a.ui.Successf("\n✅ Dados recarregados do arquivo.")
			}
			a.ui.Pause()
		case "3":
			conf, err := a.ui.ReadLine("\nTem certeza? (digite APAGAR para confirmar): ")
			if err != nil {
				return err
			}
			if conf == "APAGAR" {
				list, err := a.expenses.Clear(ctx, sess.login)
				if err != nil {
					a.ui.Errorf("\nErro ao limpar: %v", err)
				} else {
					sess.list = list
					a.ui.Successf("\n✅ Tudo apagado.")
				}
			} else {
				a.ui.Println("\nCancelado.")
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

// exportMenu writes semicolon-delimited files under the data directory.
func (a *App) exportMenu(sess *session) error {
	for {
		a.ui.Clear()
		a.ui.Println("=== EXPORTAR CSV ===")
		a.ui.Println()
		a.ui.Printf("Arquivo padrão: %s\n\n", a.cfg.ExportPath())
		a.ui.Println("1 - Exportar tudo")
		a.ui.Println("2 - Exportar por mês (YYYY-MM)")
		a.ui.Println("3 - Exportar por intervalo de datas (YYYY-MM-DD)")
		a.ui.Println("0 - Voltar")

		op, err := a.ui.ReadLine("\n> ")
		if err != nil {
			return err
		}

		switch op {
		case "1":
			a.exportTo(a.cfg.ExportPath(), sess.list)
			a.ui.Pause()
		case "2":
			mes, err := a.ui.ReadLine("\nMês (YYYY-MM): ")
			if err != nil {
				return err
			}
			filtered := expense.FilterByMonth(sess.list, mes)
			a.exportTo(filepath.Join(a.cfg.DataDir, export.MonthFileName(mes)), filtered)
			a.ui.Pause()
		case "3":
			filtered, start, end, err := a.promptRange(sess.list)
			if err != nil {
				return err
			}
			if filtered != nil {
				a.exportTo(filepath.Join(a.cfg.DataDir, export.RangeFileName(start, end)), filtered)
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

func (a *App) exportTo(path string, list []expense.Expense) {
	if err := export.ToFile(path, list); err != nil {
		a.ui.Errorf("\nErro ao exportar: %v", err)
		return
	}
	a.ui.Successf("\n✅ Exportado para %s", path)
}

// promptRange asks for both bounds and applies the inclusive range filter.
// A nil slice with a nil error means the filter itself was rejected.
func (a *App) promptRange(list []expense.Expense) ([]expense.Expense, string, string, error) {
	start, err := a.ui.promptRequiredDate("\nData inicial (YYYY-MM-DD): ")
	if err != nil {
		return nil, "", "", err
	}
	end, err := a.ui.promptRequiredDate("Data final (YYYY-MM-DD): ")
	if err != nil {
		return nil, "", "", err
	}
	filtered, err := expense.FilterByRange(list, start, end)
	if err != nil {
		a.ui.Errorf("\nIntervalo inválido: %v", err)
		return nil, "", "", nil
	}
	return filtered, start, end, nil
}
