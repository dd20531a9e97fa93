package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/zykorwx/dapp/internal/dto"
	"github.com/zykorwx/dapp/internal/model"
	"github.com/zykorwx/dapp/internal/repository"
	"github.com/zykorwx/dapp/pkg/config"
	"github.com/zykorwx/dapp/pkg/database"
)

type seedOptions struct {
	Nombre   string
	APIKey   string
	Email    string
	Telefono string
}

func newSeedCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed --nombre <name> [--api-key <hex>]",
		Short: "Create a comercio and print its API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.Nombre) == "" {
				return errors.New("--nombre is required")
			}

			comercio := &model.Comercio{
				Nombre:           opts.Nombre,
				Activo:           true,
				EmailContacto:    opts.Email,
				TelefonoContacto: opts.Telefono,
			}
			if opts.APIKey != "" {
				key, err := uuid.Parse(opts.APIKey)
				if err != nil {
					return fmt.Errorf("--api-key: %w", err)
				}
				comercio.APIKey = key
			}

			conf, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.InitDB(&conf.DB)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.MigrateModels(db, &model.Comercio{}, &model.Empleado{}); err != nil {
				return err
			}

			err = repository.NewComercioRepository(db).Create(cmd.Context(), comercio)
			if errors.Is(err, repository.ErrDuplicated) {
				return fmt.Errorf("api key %s is already registered", opts.APIKey)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "comercio %d %q\napi_key %s\n",
				comercio.ID, comercio.Nombre, dto.HexKey(comercio.APIKey.String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Nombre, "nombre", "", "comercio name")
	cmd.Flags().StringVar(&opts.APIKey, "api-key", "", "API key to assign (hex or canonical UUID); random when empty")
	cmd.Flags().StringVar(&opts.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&opts.Telefono, "telefono", "", "contact phone")

	return cmd
}
