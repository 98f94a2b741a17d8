// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/quoridor/pkg/sprt"
)

// readYAML decodes the YAML file at path into v.
func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, v)
}

func runSPRT(test *sprt.SPRT) error {
	verdict, err := test.Start()
	if err != nil {
		return err
	}

	logrus.Debugf("sprt %s finished: %v", test.Name, verdict)
	return nil
}

// quoridor sprt
func SPRT() *cobra.Command {
	return &cobra.Command{
		Use:   "sprt config.yaml",
		Short: "Run a Sequential Probability Ratio Test between two engines",
		Long: heredoc.Doc(`sprt plays game pairs between the two engines of the given
			configuration, the first one being the engine under test,
			until either the null hypothesis elo0 or the alternative
			hypothesis elo1 is accepted, or max-pairs pairs are played.

			The state of the test is saved under its name after every
			report and can be continued with restart sprt.`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			var config sprt.Config
			if err := readYAML(args[0], &config); err != nil {
				return err
			}

			test, err := sprt.New(config)
			if err != nil {
				return err
			}

			test.Out = cmd.OutOrStdout()
			return runSPRT(test)
		},
	}
}
