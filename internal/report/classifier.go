package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	diffStatusModifiedTokenConstant          = "M"
	diffStatusDeletedTokenConstant           = "D"
	diffStatusRenamedTokenPrefixConstant     = "R"
	classificationShortStatErrorTemplate     = "unable to summarize %s: %w"
	classificationFullDiffErrorTemplate      = "unable to collect diff of %s: %w"
	classificationExistenceErrorTemplate     = "unable to check localized counterpart of %s: %w"
	logMessageSkippingMalformedLineConstant  = "Skipping malformed diff status line"
	logMessageSkippingUnknownStatusConstant  = "Skipping unrecognized diff status"
	logMessageCounterpartMissingConstant     = "Localized counterpart missing at newer revision"
	logFieldStatusLineConstant               = "status_line"
	logFieldStatusTokenConstant              = "status_token"
	logFieldSourceFilePathConstant           = "source_file"
	logFieldLocalizedFilePathConstant        = "localized_file"
	renamedStatusMinimumFieldCountConstant   = 3
	statusLineMinimumFieldCountConstant      = 2
)

// ErrRepositoryInspectorNotConfigured indicates the classifier was constructed without an inspector.
var ErrRepositoryInspectorNotConfigured = errors.New("repository inspector not configured")

// RepositoryInspector describes the read-only repository queries the classifier depends on.
type RepositoryInspector interface {
	ChangedStatuses(executionContext context.Context, repositoryPath string, olderRevision string, newerRevision string, pathPrefix string) ([]string, error)
	DiffText(executionContext context.Context, repositoryPath string, olderRevision string, newerRevision string, filePath string, condensed bool) (string, error)
	ObjectExists(executionContext context.Context, repositoryPath string, revision string, filePath string) (bool, error)
}

// ClassificationOptions identifies the revisions and language trees to compare.
type ClassificationOptions struct {
	RepositoryPath string
	OlderRevision  string
	NewerRevision  string
	SourcePath     string
	TargetPath     string
}

// Classifier buckets changed source-language files into modified, renamed, and deleted lists.
type Classifier struct {
	repositoryInspector RepositoryInspector
	logger              *zap.Logger
}

// NewClassifier constructs a Classifier with the provided inspector and logger.
func NewClassifier(repositoryInspector RepositoryInspector, logger *zap.Logger) (*Classifier, error) {
	if repositoryInspector == nil {
		return nil, ErrRepositoryInspectorNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{repositoryInspector: repositoryInspector, logger: logger}, nil
}

// Classify enumerates changed paths under the source tree and keeps those whose
// localized counterpart is still tracked at the newer revision.
func (classifier *Classifier) Classify(executionContext context.Context, options ClassificationOptions) (Classification, error) {
	statusLines, statusError := classifier.repositoryInspector.ChangedStatuses(
		executionContext,
		options.RepositoryPath,
		options.OlderRevision,
		options.NewerRevision,
		options.SourcePath,
	)
	if statusError != nil {
		return Classification{}, statusError
	}

	classification := Classification{
		ModifiedFiles: []ModifiedFile{},
		RenamedFiles:  []RenamedFile{},
		DeletedPaths:  []string{},
	}

	for _, statusLine := range statusLines {
		statusFields := strings.Fields(statusLine)
		if len(statusFields) < statusLineMinimumFieldCountConstant {
			classifier.logger.Warn(logMessageSkippingMalformedLineConstant, zap.String(logFieldStatusLineConstant, statusLine))
			continue
		}

		statusToken := statusFields[0]
		sourceFilePath := statusFields[1]
		localizedFilePath := strings.ReplaceAll(sourceFilePath, options.SourcePath, options.TargetPath)

		counterpartExists, existenceError := classifier.repositoryInspector.ObjectExists(
			executionContext,
			options.RepositoryPath,
			options.NewerRevision,
			localizedFilePath,
		)
		if existenceError != nil {
			return Classification{}, fmt.Errorf(classificationExistenceErrorTemplate, sourceFilePath, existenceError)
		}
		if !counterpartExists {
			classifier.logger.Debug(
				logMessageCounterpartMissingConstant,
				zap.String(logFieldSourceFilePathConstant, sourceFilePath),
				zap.String(logFieldLocalizedFilePathConstant, localizedFilePath),
			)
			continue
		}

		switch {
		case statusToken == diffStatusDeletedTokenConstant:
			classification.DeletedPaths = append(classification.DeletedPaths, sourceFilePath)
		case strings.HasPrefix(statusToken, diffStatusRenamedTokenPrefixConstant):
			if len(statusFields) < renamedStatusMinimumFieldCountConstant {
				classifier.logger.Warn(logMessageSkippingMalformedLineConstant, zap.String(logFieldStatusLineConstant, statusLine))
				continue
			}
			classification.RenamedFiles = append(classification.RenamedFiles, RenamedFile{
				StatusToken:     statusToken,
				SourcePath:      sourceFilePath,
				DestinationPath: statusFields[2],
			})
		case statusToken == diffStatusModifiedTokenConstant:
			modifiedFile, collectError := classifier.collectModifiedFile(executionContext, options, sourceFilePath)
			if collectError != nil {
				return Classification{}, collectError
			}
			classification.ModifiedFiles = append(classification.ModifiedFiles, modifiedFile)
		default:
			classifier.logger.Warn(
				logMessageSkippingUnknownStatusConstant,
				zap.String(logFieldStatusTokenConstant, statusToken),
				zap.String(logFieldSourceFilePathConstant, sourceFilePath),
			)
		}
	}

	return classification, nil
}

func (classifier *Classifier) collectModifiedFile(executionContext context.Context, options ClassificationOptions, sourceFilePath string) (ModifiedFile, error) {
	shortStat, shortStatError := classifier.repositoryInspector.DiffText(
		executionContext,
		options.RepositoryPath,
		options.OlderRevision,
		options.NewerRevision,
		sourceFilePath,
		true,
	)
	if shortStatError != nil {
		return ModifiedFile{}, fmt.Errorf(classificationShortStatErrorTemplate, sourceFilePath, shortStatError)
	}

	fullDiff, fullDiffError := classifier.repositoryInspector.DiffText(
		executionContext,
		options.RepositoryPath,
		options.OlderRevision,
		options.NewerRevision,
		sourceFilePath,
		false,
	)
	if fullDiffError != nil {
		return ModifiedFile{}, fmt.Errorf(classificationFullDiffErrorTemplate, sourceFilePath, fullDiffError)
	}

	return ModifiedFile{Path: sourceFilePath, ShortStat: shortStat, Diff: fullDiff}, nil
}
