package api

import (
	"database/sql"
	"maps"
	"slices"
	"time"

	"edge-driver/internal/agent"
	"edge-driver/internal/database"
	"edge-driver/internal/detection"
	"edge-driver/internal/imageproc"
	"edge-driver/internal/tensor"
	"edge-driver/pkg/api"
)

func convertTensors(ms []tensor.Metadata) []api.Tensor {
	tensors := make([]api.Tensor, 0, len(ms))
	for _, m := range ms {
		tensors = append(tensors, api.Tensor{Name: m.Name, DataType: m.ElementType.String(), Shape: m.Shape})
	}
	return tensors
}

func convertModel(m agent.ModelDescriptor) api.Model {
	return api.Model{
		Name:    m.Name,
		URL:     m.URL,
		Inputs:  convertTensors(m.Inputs),
		Outputs: convertTensors(m.Outputs),
	}
}

func convertModels(ms map[string]agent.ModelDescriptor) []api.Model {
	models := make([]api.Model, 0, len(ms))
	for _, name := range slices.Sorted(maps.Keys(ms)) {
		models = append(models, convertModel(ms[name]))
	}
	return models
}

func signatures(ms []tensor.Metadata) []database.TensorSignature {
	sigs := make([]database.TensorSignature, 0, len(ms))
	for _, m := range ms {
		sigs = append(sigs, database.TensorSignature{Name: m.Name, DataType: m.ElementType.String(), Shape: m.Shape})
	}
	return sigs
}

func modelRecord(m agent.ModelDescriptor, device, version string) database.ModelRecord {
	return database.ModelRecord{
		Name:    m.Name,
		Path:    m.URL,
		Device:  device,
		Version: version,
		Inputs:  signatures(m.Inputs),
		Outputs: signatures(m.Outputs),
	}
}

func convertSignatures(sigs []database.TensorSignature) []api.Tensor {
	tensors := make([]api.Tensor, 0, len(sigs))
	for _, sig := range sigs {
		tensors = append(tensors, api.Tensor{Name: sig.Name, DataType: sig.DataType, Shape: sig.Shape})
	}
	return tensors
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

func convertModelRecords(rs []database.ModelRecord) []api.ModelRecord {
	records := make([]api.ModelRecord, 0, len(rs))
	for _, r := range rs {
		records = append(records, api.ModelRecord{
			Name:       r.Name,
			Path:       r.Path,
			Device:     r.Device,
			Version:    r.Version,
			Status:     r.Status,
			Inputs:     convertSignatures(r.Inputs),
			Outputs:    convertSignatures(r.Outputs),
			LoadedAt:   nullTime(r.LoadedAt),
			UnloadedAt: nullTime(r.UnloadedAt),
		})
	}
	return records
}

func convertDetections(ds []detection.Detection, names []string) []api.Detection {
	detections := make([]api.Detection, 0, len(ds))
	for _, d := range ds {
		detections = append(detections, api.Detection{
			ClassId:    d.ClassID,
			ClassName:  imageproc.ClassName(names, d.ClassID),
			Confidence: d.Confidence,
			Box:        d.Box,
		})
	}
	return detections
}

func detectionRecords(ds []api.Detection) []database.PredictionDetection {
	records := make([]database.PredictionDetection, 0, len(ds))
	for _, d := range ds {
		records = append(records, database.PredictionDetection{
			ClassId:    d.ClassId,
			ClassName:  d.ClassName,
			Confidence: d.Confidence,
			X1:         d.Box[0],
			Y1:         d.Box[1],
			X2:         d.Box[2],
			Y2:         d.Box[3],
		})
	}
	return records
}

func convertPrediction(p database.Prediction) api.Prediction {
	prediction := api.Prediction{
		Id:           p.Id,
		ModelName:    p.ModelName,
		Status:       p.Status,
		SourceBucket: p.SourceBucket,
		SourceKey:    p.SourceKey,
		AnnotatedKey: p.AnnotatedKey.String,
		Error:        p.Error.String,
		LatencyMs:    p.LatencyMs,
		CreationTime: p.CreationTime,
	}
	for _, d := range p.Detections {
		prediction.Detections = append(prediction.Detections, api.Detection{
			ClassId:    d.ClassId,
			ClassName:  d.ClassName,
			Confidence: d.Confidence,
			Box:        [4]float32{d.X1, d.Y1, d.X2, d.Y2},
		})
	}
	return prediction
}

func convertPredictions(ps []database.Prediction) []api.Prediction {
	predictions := make([]api.Prediction, 0, len(ps))
	for _, p := range ps {
		predictions = append(predictions, convertPrediction(p))
	}
	return predictions
}
