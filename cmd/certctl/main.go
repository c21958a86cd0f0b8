// certctl é a ferramenta administrativa do serviço de certificados: gera
// certificados sem passar pela API, lista o índice e confere a integridade de
// um certificado emitido.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Eduarjn/eralearn-sub001/internal/adapter/repository"
	"github.com/Eduarjn/eralearn-sub001/internal/domain/certificate"
	"github.com/Eduarjn/eralearn-sub001/internal/domain/template"
	"github.com/Eduarjn/eralearn-sub001/internal/infrastructure/storage"
	"github.com/Eduarjn/eralearn-sub001/internal/service"
	"github.com/Eduarjn/eralearn-sub001/pkg/hash"
	"github.com/Eduarjn/eralearn-sub001/pkg/lock"
	"github.com/Eduarjn/eralearn-sub001/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "certctl",
		Short:         "Administra o armazenamento de certificados",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newGenerateCmd(), newListCmd(), newVerifyCmd())
	return cmd
}

// buildDeps monta as dependências compartilhadas pelos comandos a partir do
// ambiente, igual ao binário da API
func buildDeps() (*storage.Config, certificate.ManifestStore, *template.Registry, error) {
	config := storage.NewConfigFromEnv()

	var registry *template.Registry
	if config.TemplatesFile != "" {
		loaded, err := template.LoadRegistryFile(config.TemplatesDir, config.TemplatesFile)
		if err != nil {
			return nil, nil, nil, err
		}
		registry = loaded
	} else {
		registry = template.NewRegistry(config.TemplatesDir)
	}

	store := repository.NewFileManifestStore(config)
	return config, store, registry, nil
}

func newGenerateCmd() *cobra.Command {
	var (
		templateKey string
		format      string
		tokenPairs  []string
		overwrite   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Gera um certificado diretamente no armazenamento",
		Example: `  certctl generate --template pabx_fundamentos --format svg \
    --token NOME_COMPLETO="João Silva" --token CURSO="Fundamentos de PABX" \
    --token DATA_CONCLUSAO=2025-01-09 --token CARGA_HORARIA=8h \
    --token CERT_ID=FUP-2025-000001 --token QR_URL=https://x/verify/FUP-2025-000001`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, store, registry, err := buildDeps()
			if err != nil {
				return err
			}

			tokens := make(map[string]string, len(tokenPairs))
			for _, pair := range tokenPairs {
				key, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("token inválido %q, use CHAVE=VALOR", pair)
				}
				tokens[key] = value
			}

			locker := lock.NewFileLocker(config.LocksDir(), config.LockTTL)
			certService := service.NewCertificateService(store, registry, locker, config, logger.NewLogger())

			result, err := certService.Generate(context.Background(), certificate.GenerateRequest{
				TemplateKey: templateKey,
				Format:      certificate.Format(format),
				Tokens:      tokens,
				Overwrite:   overwrite,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "certificado %s gerado (modelo %s)\n", result.ID, result.TemplateKey)
			fmt.Fprintf(cmd.OutOrStdout(), "  manifesto: %s\n", result.Paths.Manifest)
			fmt.Fprintf(cmd.OutOrStdout(), "  arquivo:   %s\n", result.Paths.File)
			fmt.Fprintf(cmd.OutOrStdout(), "  verificar: %s\n", result.Paths.Verify)
			return nil
		},
	}

	cmd.Flags().StringVar(&templateKey, "template", "", "chave do modelo")
	cmd.Flags().StringVar(&format, "format", "svg", "formato de saída (svg, png ou pdf)")
	cmd.Flags().StringArrayVar(&tokenPairs, "token", nil, "token no formato CHAVE=VALOR (repetível)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "substitui o manifesto se o certificado já existir")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func newListCmd() *cobra.Command {
	var (
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista as entradas do índice de certificados",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, _, err := buildDeps()
			if err != nil {
				return err
			}

			if page < 1 {
				page = 1
			}
			if pageSize < 1 {
				pageSize = 20
			}
			entries, total, err := store.ListIndex(context.Background(), pageSize, (page-1)*pageSize)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d certificado(s) no índice\n", total)
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					entry.ID,
					entry.CreatedAt.Format("2006-01-02"),
					entry.TokensResumo.NomeCompleto,
					entry.TokensResumo.Curso)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "página")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "itens por página")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <id>",
		Short: "Confere a integridade do SVG de um certificado emitido",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, _, err := buildDeps()
			if err != nil {
				return err
			}

			id := args[0]
			manifest, err := store.FindByID(context.Background(), id)
			if err != nil {
				return err
			}

			content, err := store.ReadRenderedFile(context.Background(), manifest, certificate.FormatSVG)
			if err != nil {
				return err
			}

			actual := hash.SHA256Hex(content)
			if actual != manifest.Hashes.FinalSvgSHA256 {
				return fmt.Errorf("hash divergente para %s: manifesto %s, arquivo %s",
					id, manifest.Hashes.FinalSvgSHA256, actual)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "certificado %s íntegro (sha256 %s)\n", id, actual)
			return nil
		},
	}
}
